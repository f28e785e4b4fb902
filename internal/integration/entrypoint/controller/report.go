// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savings-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	getSpendingAnalysisUseCase *report.GetSpendingAnalysisUseCase
	getIncomeExpenseUseCase    *report.GetIncomeExpenseUseCase
	getSavingsGrowthUseCase    *report.GetSavingsGrowthUseCase
	getBudgetVarianceUseCase   *report.GetBudgetVarianceUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getSpendingAnalysisUseCase *report.GetSpendingAnalysisUseCase,
	getIncomeExpenseUseCase *report.GetIncomeExpenseUseCase,
	getSavingsGrowthUseCase *report.GetSavingsGrowthUseCase,
	getBudgetVarianceUseCase *report.GetBudgetVarianceUseCase,
) *ReportController {
	return &ReportController{
		getSpendingAnalysisUseCase: getSpendingAnalysisUseCase,
		getIncomeExpenseUseCase:    getIncomeExpenseUseCase,
		getSavingsGrowthUseCase:    getSavingsGrowthUseCase,
		getBudgetVarianceUseCase:   getBudgetVarianceUseCase,
	}
}

// GetSpendingAnalysis handles GET /reports/spending requests.
func (c *ReportController) GetSpendingAnalysis(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	startDate, endDate, ok := dateRangeFromQuery(ctx)
	if !ok {
		return
	}

	input := report.GetSpendingAnalysisInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getSpendingAnalysisUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingAnalysisResponse(output))
}

// GetIncomeExpense handles GET /reports/income-expense requests.
func (c *ReportController) GetIncomeExpense(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	startDate, endDate, ok := dateRangeFromQuery(ctx)
	if !ok {
		return
	}

	input := report.GetIncomeExpenseInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getIncomeExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeExpenseResponse(output))
}

// GetSavingsGrowth handles GET /reports/savings-growth requests.
func (c *ReportController) GetSavingsGrowth(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	startDate, endDate, ok := dateRangeFromQuery(ctx)
	if !ok {
		return
	}

	input := report.GetSavingsGrowthInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getSavingsGrowthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGrowthResponse(output))
}

// GetBudgetVariance handles GET /reports/budget-variance requests.
func (c *ReportController) GetBudgetVariance(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	startDate, endDate, ok := dateRangeFromQuery(ctx)
	if !ok {
		return
	}

	input := report.GetBudgetVarianceInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getBudgetVarianceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetVarianceResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
// The budget-vs-actual report requires a profile, so a profile not-found
// condition can surface here as a 404.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.statusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		status := http.StatusInternalServerError
		if profileErr.Code == domainerror.ErrCodeProfileNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
