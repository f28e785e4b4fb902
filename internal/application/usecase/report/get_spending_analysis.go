// Package report contains the reporting engine and report-related use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetSpendingAnalysisInput represents the input for the spending analysis report.
type GetSpendingAnalysisInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CategorySpending represents the expense total for one category.
type CategorySpending struct {
	Category string
	Total    decimal.Decimal
}

// GetSpendingAnalysisOutput represents the output of the spending analysis report.
type GetSpendingAnalysisOutput struct {
	StartDate  time.Time
	EndDate    time.Time
	Categories []CategorySpending
}

// GetSpendingAnalysisUseCase handles the category spending breakdown report.
type GetSpendingAnalysisUseCase struct {
	transactionRepo TransactionSource
}

// NewGetSpendingAnalysisUseCase creates a new GetSpendingAnalysisUseCase instance.
func NewGetSpendingAnalysisUseCase(transactionRepo TransactionSource) *GetSpendingAnalysisUseCase {
	return &GetSpendingAnalysisUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the expense total per category for the given period.
func (uc *GetSpendingAnalysisUseCase) Execute(
	ctx context.Context,
	input GetSpendingAnalysisInput,
) (*GetSpendingAnalysisOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	engine := NewEngine(transactions, nil)
	totals, err := engine.SpendingAnalysis(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	categories := make([]CategorySpending, 0, len(totals))
	for category, total := range totals {
		categories = append(categories, CategorySpending{
			Category: category,
			Total:    total,
		})
	}

	// Highest spending first; category name breaks ties so repeated calls
	// with the same inputs produce identical output.
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	return &GetSpendingAnalysisOutput{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Categories: categories,
	}, nil
}
