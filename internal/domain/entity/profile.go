// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile represents a user's savings-goal profile in the Savings Tracker system.
type Profile struct {
	UserID             uuid.UUID
	JobTitle           string
	MonthlySalary      decimal.Decimal
	SavingsGoalPercent decimal.Decimal // value in [0, 100]
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewProfile creates a new Profile entity.
func NewProfile(userID uuid.UUID, jobTitle string, monthlySalary, savingsGoalPercent decimal.Decimal) *Profile {
	now := time.Now().UTC()

	return &Profile{
		UserID:             userID,
		JobTitle:           jobTitle,
		MonthlySalary:      monthlySalary,
		SavingsGoalPercent: savingsGoalPercent,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// MonthlySavingsGoalAmount returns the amount of salary the user intends to
// save each month. It is recomputed from the stored fields on every call so
// profile edits are always reflected.
func (p *Profile) MonthlySavingsGoalAmount() decimal.Decimal {
	return p.MonthlySalary.Mul(p.SavingsGoalPercent).Div(decimal.NewFromInt(100))
}
