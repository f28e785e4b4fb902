// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/usecase/profile"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getProfileUseCase    *profile.GetProfileUseCase
	upsertProfileUseCase *profile.UpsertProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getProfileUseCase *profile.GetProfileUseCase,
	upsertProfileUseCase *profile.UpsertProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getProfileUseCase:    getProfileUseCase,
		upsertProfileUseCase: upsertProfileUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	input := profile.GetProfileInput{
		UserID: userID,
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Upsert handles PUT /profile requests.
func (c *ProfileController) Upsert(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpsertProfileInput{
		UserID:             userID,
		JobTitle:           req.JobTitle,
		MonthlySalary:      decimal.NewFromFloat(req.MonthlySalary),
		SavingsGoalPercent: decimal.NewFromFloat(req.SavingsGoalPercent),
	}

	output, err := c.upsertProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpsertProfileResponse(output))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(c.statusCodeForProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeProfileInternalError),
	})
}

// statusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *ProfileController) statusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSalary,
		domainerror.ErrCodeInvalidSavingsPercent:
		return http.StatusBadRequest
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
