// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
// Each user has at most one profile.
type ProfileRepository interface {
	// FindByUserID retrieves the profile for a given user.
	// Returns domain ErrProfileNotFound when no profile exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert creates the user's profile or replaces its fields if one exists.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
