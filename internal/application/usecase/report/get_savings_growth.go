// Package report contains the reporting engine and report-related use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetSavingsGrowthInput represents the input for the savings growth report.
type GetSavingsGrowthInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetSavingsGrowthOutput represents the output of the savings growth report.
// Points covers every calendar day of the period when the period holds any
// transactions, and is empty otherwise.
type GetSavingsGrowthOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Points    []GrowthPoint
}

// GetSavingsGrowthUseCase handles the cumulative savings growth report.
type GetSavingsGrowthUseCase struct {
	transactionRepo TransactionSource
}

// NewGetSavingsGrowthUseCase creates a new GetSavingsGrowthUseCase instance.
func NewGetSavingsGrowthUseCase(transactionRepo TransactionSource) *GetSavingsGrowthUseCase {
	return &GetSavingsGrowthUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the per-day cumulative balance series for the given period.
func (uc *GetSavingsGrowthUseCase) Execute(
	ctx context.Context,
	input GetSavingsGrowthInput,
) (*GetSavingsGrowthOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	engine := NewEngine(transactions, nil)
	points, err := engine.SavingsGrowth(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return &GetSavingsGrowthOutput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Points:    points,
	}, nil
}
