// Package report contains the reporting engine and report-related use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetBudgetVarianceInput represents the input for the budget-vs-actual report.
type GetBudgetVarianceInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetBudgetVarianceOutput represents the output of the budget-vs-actual report.
type GetBudgetVarianceOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	ExpectedIncome decimal.Decimal
	ActualIncome   decimal.Decimal
	SavingsGoal    decimal.Decimal
	ActualSavings  decimal.Decimal
	Variance       decimal.Decimal
}

// GetBudgetVarianceUseCase handles the budget-vs-actual goal variance report.
// It requires the user's profile; a missing profile surfaces as a not-found
// condition owned by the entrypoint layer.
type GetBudgetVarianceUseCase struct {
	transactionRepo TransactionSource
	profileRepo     ProfileSource
}

// NewGetBudgetVarianceUseCase creates a new GetBudgetVarianceUseCase instance.
func NewGetBudgetVarianceUseCase(
	transactionRepo TransactionSource,
	profileRepo ProfileSource,
) *GetBudgetVarianceUseCase {
	return &GetBudgetVarianceUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
	}
}

// Execute computes the goal variance for the given period.
func (uc *GetBudgetVarianceUseCase) Execute(
	ctx context.Context,
	input GetBudgetVarianceInput,
) (*GetBudgetVarianceOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	engine := NewEngine(transactions, profile)
	variance, err := engine.BudgetVsActual(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return &GetBudgetVarianceOutput{
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		ExpectedIncome: variance.ExpectedIncome,
		ActualIncome:   variance.ActualIncome,
		SavingsGoal:    variance.SavingsGoal,
		ActualSavings:  variance.ActualSavings,
		Variance:       variance.Variance,
	}, nil
}
