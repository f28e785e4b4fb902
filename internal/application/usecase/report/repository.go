// Package report contains the reporting engine and report-related use cases.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// TransactionSource supplies one user's transactions for report queries.
// The store scopes records by user; the engine trusts that scoping and does
// not re-check ownership.
type TransactionSource interface {
	// FindByUser retrieves all transactions for a given user, ordered by date ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)
}

// ProfileSource supplies the user's savings-goal profile.
type ProfileSource interface {
	// FindByUserID retrieves the profile for a given user.
	// Returns domain ErrProfileNotFound when no profile exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
