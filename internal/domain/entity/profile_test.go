// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProfileMonthlySavingsGoalAmount(t *testing.T) {
	t.Run("computes percent of salary", func(t *testing.T) {
		profile := NewProfile(uuid.New(), "Software Engineer", decimal.NewFromInt(2500), decimal.NewFromInt(20))

		want := decimal.NewFromInt(500)
		if got := profile.MonthlySavingsGoalAmount(); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("zero percent yields zero goal", func(t *testing.T) {
		profile := NewProfile(uuid.New(), "", decimal.NewFromInt(2500), decimal.Zero)

		if got := profile.MonthlySavingsGoalAmount(); !got.Equal(decimal.Zero) {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("hundred percent yields full salary", func(t *testing.T) {
		profile := NewProfile(uuid.New(), "", decimal.NewFromInt(3100), decimal.NewFromInt(100))

		if got := profile.MonthlySavingsGoalAmount(); !got.Equal(decimal.NewFromInt(3100)) {
			t.Errorf("expected 3100, got %s", got)
		}
	})

	t.Run("reflects field edits without re-construction", func(t *testing.T) {
		profile := NewProfile(uuid.New(), "", decimal.NewFromInt(2500), decimal.NewFromInt(20))
		profile.SavingsGoalPercent = decimal.NewFromInt(40)

		want := decimal.NewFromInt(1000)
		if got := profile.MonthlySavingsGoalAmount(); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("fractional percent keeps decimal precision", func(t *testing.T) {
		profile := NewProfile(uuid.New(), "", decimal.NewFromFloat(3333.33), decimal.NewFromFloat(12.5))

		want := decimal.NewFromFloat(416.66625)
		if got := profile.MonthlySavingsGoalAmount(); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
