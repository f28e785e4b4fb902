// Package profile contains profile-related use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// UpsertProfileInput represents the input for creating or replacing a profile.
type UpsertProfileInput struct {
	UserID             uuid.UUID
	JobTitle           string
	MonthlySalary      decimal.Decimal
	SavingsGoalPercent decimal.Decimal
}

// UpsertProfileOutput represents the output of creating or replacing a profile.
type UpsertProfileOutput struct {
	Profile            *entity.Profile
	MonthlySavingsGoal decimal.Decimal
}

// UpsertProfileUseCase handles profile creation and replacement logic.
type UpsertProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpsertProfileUseCase creates a new UpsertProfileUseCase instance.
func NewUpsertProfileUseCase(profileRepo adapter.ProfileRepository) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute creates the user's profile or replaces its fields if one exists.
func (uc *UpsertProfileUseCase) Execute(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	if input.MonthlySalary.IsNegative() {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidSalary,
			"monthly salary must not be negative",
			domainerror.ErrInvalidSalary,
		)
	}

	if input.SavingsGoalPercent.IsNegative() || input.SavingsGoalPercent.GreaterThan(hundred) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidSavingsPercent,
			"savings goal percent must be between 0 and 100",
			domainerror.ErrInvalidSavingsPercent,
		)
	}

	profile := entity.NewProfile(input.UserID, input.JobTitle, input.MonthlySalary, input.SavingsGoalPercent)

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &UpsertProfileOutput{
		Profile:            profile,
		MonthlySavingsGoal: profile.MonthlySavingsGoalAmount(),
	}, nil
}
