// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/savings-tracker/backend/internal/application/usecase/report"
)

// ReportPeriodResponse represents the reporting window in report responses.
type ReportPeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SpendingAnalysisResponse represents the response for the spending analysis report.
type SpendingAnalysisResponse struct {
	Data SpendingAnalysisData `json:"data"`
}

// SpendingAnalysisData represents the data section of the spending analysis response.
type SpendingAnalysisData struct {
	Period     ReportPeriodResponse       `json:"period"`
	Categories []CategorySpendingResponse `json:"categories"`
}

// CategorySpendingResponse represents one category's expense total.
type CategorySpendingResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ToSpendingAnalysisResponse converts a GetSpendingAnalysisOutput to its response DTO.
func ToSpendingAnalysisResponse(output *report.GetSpendingAnalysisOutput) SpendingAnalysisResponse {
	categories := make([]CategorySpendingResponse, len(output.Categories))
	for i, c := range output.Categories {
		total, _ := c.Total.Float64()
		categories[i] = CategorySpendingResponse{
			Category: c.Category,
			Total:    total,
		}
	}

	return SpendingAnalysisResponse{
		Data: SpendingAnalysisData{
			Period: ReportPeriodResponse{
				StartDate: output.StartDate.Format("2006-01-02"),
				EndDate:   output.EndDate.Format("2006-01-02"),
			},
			Categories: categories,
		},
	}
}

// IncomeExpenseResponse represents the response for the income-vs-expense report.
type IncomeExpenseResponse struct {
	Data IncomeExpenseData `json:"data"`
}

// IncomeExpenseData represents the data section of the income-vs-expense response.
type IncomeExpenseData struct {
	Period        ReportPeriodResponse `json:"period"`
	TotalIncome   float64              `json:"total_income"`
	TotalExpenses float64              `json:"total_expenses"`
}

// ToIncomeExpenseResponse converts a GetIncomeExpenseOutput to its response DTO.
func ToIncomeExpenseResponse(output *report.GetIncomeExpenseOutput) IncomeExpenseResponse {
	totalIncome, _ := output.TotalIncome.Float64()
	totalExpenses, _ := output.TotalExpenses.Float64()

	return IncomeExpenseResponse{
		Data: IncomeExpenseData{
			Period: ReportPeriodResponse{
				StartDate: output.StartDate.Format("2006-01-02"),
				EndDate:   output.EndDate.Format("2006-01-02"),
			},
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
		},
	}
}

// SavingsGrowthResponse represents the response for the savings growth report.
type SavingsGrowthResponse struct {
	Data SavingsGrowthData `json:"data"`
}

// SavingsGrowthData represents the data section of the savings growth response.
type SavingsGrowthData struct {
	Period ReportPeriodResponse  `json:"period"`
	Points []GrowthPointResponse `json:"points"`
}

// GrowthPointResponse represents one day of the cumulative balance series.
type GrowthPointResponse struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// ToSavingsGrowthResponse converts a GetSavingsGrowthOutput to its response DTO.
func ToSavingsGrowthResponse(output *report.GetSavingsGrowthOutput) SavingsGrowthResponse {
	points := make([]GrowthPointResponse, len(output.Points))
	for i, p := range output.Points {
		balance, _ := p.Balance.Float64()
		points[i] = GrowthPointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Balance: balance,
		}
	}

	return SavingsGrowthResponse{
		Data: SavingsGrowthData{
			Period: ReportPeriodResponse{
				StartDate: output.StartDate.Format("2006-01-02"),
				EndDate:   output.EndDate.Format("2006-01-02"),
			},
			Points: points,
		},
	}
}

// BudgetVarianceResponse represents the response for the budget-vs-actual report.
type BudgetVarianceResponse struct {
	Data BudgetVarianceData `json:"data"`
}

// BudgetVarianceData represents the data section of the budget-vs-actual response.
type BudgetVarianceData struct {
	Period         ReportPeriodResponse `json:"period"`
	ExpectedIncome float64              `json:"expected_income"`
	ActualIncome   float64              `json:"actual_income"`
	SavingsGoal    float64              `json:"savings_goal"`
	ActualSavings  float64              `json:"actual_savings"`
	Variance       float64              `json:"variance"`
}

// ToBudgetVarianceResponse converts a GetBudgetVarianceOutput to its response DTO.
func ToBudgetVarianceResponse(output *report.GetBudgetVarianceOutput) BudgetVarianceResponse {
	expectedIncome, _ := output.ExpectedIncome.Float64()
	actualIncome, _ := output.ActualIncome.Float64()
	savingsGoal, _ := output.SavingsGoal.Float64()
	actualSavings, _ := output.ActualSavings.Float64()
	variance, _ := output.Variance.Float64()

	return BudgetVarianceResponse{
		Data: BudgetVarianceData{
			Period: ReportPeriodResponse{
				StartDate: output.StartDate.Format("2006-01-02"),
				EndDate:   output.EndDate.Format("2006-01-02"),
			},
			ExpectedIncome: expectedIncome,
			ActualIncome:   actualIncome,
			SavingsGoal:    savingsGoal,
			ActualSavings:  actualSavings,
			Variance:       variance,
		},
	}
}
