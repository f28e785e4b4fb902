// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/savings-tracker/backend/internal/domain/error"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/dto"
)

// userIDFromQuery extracts and validates the user_id query parameter.
// Authentication lives in front of this service; the user scope arrives as
// an already-authorized identifier.
func userIDFromQuery(ctx *gin.Context) (uuid.UUID, bool) {
	userIDStr := ctx.Query("user_id")
	if userIDStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "user_id is required",
		})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id format",
		})
		return uuid.Nil, false
	}

	return userID, true
}

// dateRangeFromQuery extracts and validates the start_date and end_date
// query parameters. Dates must be well-formed YYYY-MM-DD values; ordering is
// validated downstream so the range error carries its domain code.
func dateRangeFromQuery(ctx *gin.Context) (startDate, endDate time.Time, ok bool) {
	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}

	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	endDate, err = time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}
