// Package error defines domain-specific errors for the Savings Tracker application.
package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when no profile exists for the user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidSalary is returned when monthly salary is negative.
	ErrInvalidSalary = errors.New("monthly salary must not be negative")

	// ErrInvalidSavingsPercent is returned when the savings goal percent is outside [0, 100].
	ErrInvalidSavingsPercent = errors.New("savings goal percent must be between 0 and 100")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSalary         ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidSavingsPercent ProfileErrorCode = "PRF-010002"

	// Resource errors (02XXXX)
	ErrCodeProfileNotFound ProfileErrorCode = "PRF-020001"

	// Internal errors (99XXXX)
	ErrCodeProfileInternalError ProfileErrorCode = "PRF-990001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
