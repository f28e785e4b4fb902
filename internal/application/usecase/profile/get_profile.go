// Package profile contains profile-related use cases.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
)

// GetProfileInput represents the input for retrieving a profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of retrieving a profile.
// MonthlySavingsGoal is derived from the stored fields at read time.
type GetProfileOutput struct {
	UserID             uuid.UUID
	JobTitle           string
	MonthlySalary      decimal.Decimal
	SavingsGoalPercent decimal.Decimal
	MonthlySavingsGoal decimal.Decimal
	UpdatedAt          time.Time
}

// GetProfileUseCase handles profile retrieval logic.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute retrieves the user's profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{
		UserID:             profile.UserID,
		JobTitle:           profile.JobTitle,
		MonthlySalary:      profile.MonthlySalary,
		SavingsGoalPercent: profile.SavingsGoalPercent,
		MonthlySavingsGoal: profile.MonthlySavingsGoalAmount(),
		UpdatedAt:          profile.UpdatedAt,
	}, nil
}
