// Package profile contains profile-related use cases.
package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

type fakeProfileRepository struct {
	profile  *entity.Profile
	findErr  error
	upserted []*entity.Profile
}

func (f *fakeProfileRepository) FindByUserID(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.profile, nil
}

func (f *fakeProfileRepository) Upsert(_ context.Context, profile *entity.Profile) error {
	f.upserted = append(f.upserted, profile)
	return nil
}

func TestGetProfileUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the profile with the derived savings goal", func(t *testing.T) {
		repo := &fakeProfileRepository{
			profile: entity.NewProfile(userID, "Software Engineer", decimal.NewFromInt(2500), decimal.NewFromInt(20)),
		}
		uc := NewGetProfileUseCase(repo)

		output, err := uc.Execute(context.Background(), GetProfileInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.JobTitle != "Software Engineer" {
			t.Errorf("expected job title Software Engineer, got %s", output.JobTitle)
		}
		if !output.MonthlySavingsGoal.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected derived goal 500, got %s", output.MonthlySavingsGoal)
		}
	})

	t.Run("propagates not-found untouched", func(t *testing.T) {
		notFound := domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
		uc := NewGetProfileUseCase(&fakeProfileRepository{findErr: notFound})

		_, err := uc.Execute(context.Background(), GetProfileInput{UserID: userID})

		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) {
			t.Fatalf("expected a ProfileError, got %T", err)
		}
		if profileErr.Code != domainerror.ErrCodeProfileNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProfileNotFound, profileErr.Code)
		}
	})
}

func TestUpsertProfileUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("stores a valid profile", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpsertProfileUseCase(repo)

		output, err := uc.Execute(context.Background(), UpsertProfileInput{
			UserID:             userID,
			JobTitle:           "Designer",
			MonthlySalary:      decimal.NewFromInt(3100),
			SavingsGoalPercent: decimal.NewFromInt(25),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(repo.upserted) != 1 {
			t.Fatalf("expected 1 stored profile, got %d", len(repo.upserted))
		}
		if !output.MonthlySavingsGoal.Equal(decimal.NewFromInt(775)) {
			t.Errorf("expected derived goal 775, got %s", output.MonthlySavingsGoal)
		}
	})

	t.Run("accepts the percent boundaries", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpsertProfileUseCase(repo)

		for _, percent := range []int64{0, 100} {
			_, err := uc.Execute(context.Background(), UpsertProfileInput{
				UserID:             userID,
				MonthlySalary:      decimal.NewFromInt(2500),
				SavingsGoalPercent: decimal.NewFromInt(percent),
			})
			if err != nil {
				t.Errorf("percent %d: expected no error, got %v", percent, err)
			}
		}
	})

	t.Run("rejects negative salary", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpsertProfileUseCase(repo)

		_, err := uc.Execute(context.Background(), UpsertProfileInput{
			UserID:             userID,
			MonthlySalary:      decimal.NewFromInt(-1),
			SavingsGoalPercent: decimal.NewFromInt(20),
		})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidSalary)
	})

	t.Run("rejects percent above 100", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpsertProfileUseCase(repo)

		_, err := uc.Execute(context.Background(), UpsertProfileInput{
			UserID:             userID,
			MonthlySalary:      decimal.NewFromInt(2500),
			SavingsGoalPercent: decimal.NewFromFloat(100.5),
		})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidSavingsPercent)
	})

	t.Run("rejects negative percent", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpsertProfileUseCase(repo)

		_, err := uc.Execute(context.Background(), UpsertProfileInput{
			UserID:             userID,
			MonthlySalary:      decimal.NewFromInt(2500),
			SavingsGoalPercent: decimal.NewFromInt(-5),
		})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidSavingsPercent)
	})
}

func assertProfileErrorCode(t *testing.T, err error, code domainerror.ProfileErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var profileErr *domainerror.ProfileError
	if !errors.As(err, &profileErr) {
		t.Fatalf("expected a ProfileError, got %T", err)
	}

	if profileErr.Code != code {
		t.Errorf("expected code %s, got %s", code, profileErr.Code)
	}
}
