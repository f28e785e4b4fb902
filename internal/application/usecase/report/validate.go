// Package report contains the reporting engine and report-related use cases.
package report

import (
	"time"

	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

// validateRange checks the shared date-range preconditions for all report
// queries: both dates present and start not after end.
func validateRange(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if startDate.After(endDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
