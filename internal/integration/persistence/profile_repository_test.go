// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByUserID returns a coded not-found for missing profiles", func(t *testing.T) {
		repo := NewProfileRepository(newTestDB(t))

		_, err := repo.FindByUserID(ctx, uuid.New())

		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) {
			t.Fatalf("expected a ProfileError, got %T", err)
		}
		if profileErr.Code != domainerror.ErrCodeProfileNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProfileNotFound, profileErr.Code)
		}
	})

	t.Run("Upsert creates a profile on first write", func(t *testing.T) {
		repo := NewProfileRepository(newTestDB(t))
		userID := uuid.New()

		profile := entity.NewProfile(userID, "Software Engineer", decimal.NewFromInt(2500), decimal.NewFromInt(20))
		if err := repo.Upsert(ctx, profile); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if loaded.JobTitle != "Software Engineer" {
			t.Errorf("expected job title Software Engineer, got %s", loaded.JobTitle)
		}
		if !loaded.MonthlySalary.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected salary 2500, got %s", loaded.MonthlySalary)
		}
	})

	t.Run("Upsert replaces fields on second write", func(t *testing.T) {
		repo := NewProfileRepository(newTestDB(t))
		userID := uuid.New()

		first := entity.NewProfile(userID, "Junior Engineer", decimal.NewFromInt(2500), decimal.NewFromInt(20))
		if err := repo.Upsert(ctx, first); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		second := entity.NewProfile(userID, "Senior Engineer", decimal.NewFromInt(4200), decimal.NewFromInt(30))
		if err := repo.Upsert(ctx, second); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if loaded.JobTitle != "Senior Engineer" {
			t.Errorf("expected replaced job title, got %s", loaded.JobTitle)
		}
		if !loaded.MonthlySalary.Equal(decimal.NewFromInt(4200)) {
			t.Errorf("expected salary 4200, got %s", loaded.MonthlySalary)
		}
		if !loaded.MonthlySavingsGoalAmount().Equal(decimal.NewFromInt(1260)) {
			t.Errorf("expected derived goal 1260, got %s", loaded.MonthlySavingsGoalAmount())
		}
	})

	t.Run("profiles are isolated per user", func(t *testing.T) {
		repo := NewProfileRepository(newTestDB(t))
		alice := uuid.New()
		bob := uuid.New()

		if err := repo.Upsert(ctx, entity.NewProfile(alice, "Engineer", decimal.NewFromInt(2500), decimal.NewFromInt(20))); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.Upsert(ctx, entity.NewProfile(bob, "Designer", decimal.NewFromInt(3100), decimal.NewFromInt(25))); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := repo.FindByUserID(ctx, alice)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded.JobTitle != "Engineer" {
			t.Errorf("expected Engineer, got %s", loaded.JobTitle)
		}
	})
}
