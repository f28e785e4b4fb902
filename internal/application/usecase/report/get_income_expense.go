// Package report contains the reporting engine and report-related use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetIncomeExpenseInput represents the input for the income-vs-expense report.
type GetIncomeExpenseInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetIncomeExpenseOutput represents the output of the income-vs-expense report.
type GetIncomeExpenseOutput struct {
	StartDate     time.Time
	EndDate       time.Time
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// GetIncomeExpenseUseCase handles the income-vs-expense totals report.
type GetIncomeExpenseUseCase struct {
	transactionRepo TransactionSource
}

// NewGetIncomeExpenseUseCase creates a new GetIncomeExpenseUseCase instance.
func NewGetIncomeExpenseUseCase(transactionRepo TransactionSource) *GetIncomeExpenseUseCase {
	return &GetIncomeExpenseUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes total income and total expenses for the given period.
func (uc *GetIncomeExpenseUseCase) Execute(
	ctx context.Context,
	input GetIncomeExpenseInput,
) (*GetIncomeExpenseOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	engine := NewEngine(transactions, nil)
	totals, err := engine.IncomeVsExpense(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return &GetIncomeExpenseOutput{
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalIncome:   totals.TotalIncome,
		TotalExpenses: totals.TotalExpenses,
	}, nil
}
