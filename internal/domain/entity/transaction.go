// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

// TransactionKind represents the kind of transaction (income or expense).
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// IsValid reports whether the kind is one of the two recognized values.
// Unrecognized kinds are rejected at construction instead of being
// reclassified as expenses.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction represents a financial transaction in the Savings Tracker system.
// Amount is always positive; the kind carries the sign semantics.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // normalized to a calendar day (UTC midnight)
	Kind        TransactionKind
	Category    string
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
// It fails when the amount is not strictly positive or the kind is not a
// recognized value; the record is immutable after construction.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	kind TransactionKind,
	category string,
	description string,
	amount decimal.Decimal,
) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        DayOf(date),
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// DayOf normalizes a timestamp to its calendar day at UTC midnight.
// Time-of-day is discarded; same-day transactions always share a day key.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
