// Package error defines domain-specific errors for the Savings Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidAmount is returned when a transaction amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionKind is returned when the kind is not 'income' or 'expense'.
	ErrInvalidTransactionKind = errors.New("transaction kind must be 'income' or 'expense'")

	// ErrMissingCategory is returned when the category label is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrMissingDate is returned when the transaction date is not provided.
	ErrMissingDate = errors.New("date is required")

	// ErrTransactionNotFound is returned when a transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionNotOwned is returned when a transaction belongs to another user.
	ErrTransactionNotOwned = errors.New("transaction does not belong to user")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TXN-010002"
	ErrCodeMissingCategory        TransactionErrorCode = "TXN-010003"
	ErrCodeMissingDate            TransactionErrorCode = "TXN-010004"

	// Resource errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionNotOwned TransactionErrorCode = "TXN-020002"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
