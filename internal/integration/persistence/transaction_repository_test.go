// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
	"github.com/savings-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.TransactionModel{}, &model.ProfileModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, date time.Time, kind entity.TransactionKind, category string, amount float64) *entity.Transaction {
	t.Helper()

	txn, err := entity.NewTransaction(userID, date, kind, category, "", decimal.NewFromFloat(amount))
	if err != nil {
		t.Fatalf("failed to build transaction: %v", err)
	}
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	octDay := func(d int) time.Time {
		return time.Date(2023, 10, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("FindByUser returns transactions ordered by date ascending", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		mustCreate(t, repo, userID, octDay(12), entity.TransactionKindExpense, "Bills", 120)
		mustCreate(t, repo, userID, octDay(1), entity.TransactionKindIncome, "Salary", 2500)
		mustCreate(t, repo, userID, octDay(5), entity.TransactionKindExpense, "Groceries", 75.50)

		transactions, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		for i := 1; i < len(transactions); i++ {
			if transactions[i].Date.Before(transactions[i-1].Date) {
				t.Errorf("expected ascending dates, got %v before %v",
					transactions[i-1].Date, transactions[i].Date)
			}
		}
	})

	t.Run("FindByUser scopes by user", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		alice := uuid.New()
		bob := uuid.New()

		mustCreate(t, repo, alice, octDay(1), entity.TransactionKindIncome, "Salary", 2500)
		mustCreate(t, repo, bob, octDay(2), entity.TransactionKindExpense, "Groceries", 40)

		transactions, err := repo.FindByUser(ctx, alice)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactions))
		}
		if transactions[0].UserID != alice {
			t.Errorf("expected transaction owned by %s, got %s", alice, transactions[0].UserID)
		}
	})

	t.Run("FindByFilter applies date kind and category filters", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		mustCreate(t, repo, userID, octDay(1), entity.TransactionKindIncome, "Salary", 2500)
		mustCreate(t, repo, userID, octDay(5), entity.TransactionKindExpense, "Groceries", 75.50)
		mustCreate(t, repo, userID, octDay(20), entity.TransactionKindExpense, "Groceries", 85)
		mustCreate(t, repo, userID, octDay(12), entity.TransactionKindExpense, "Bills", 120)

		kind := entity.TransactionKindExpense
		start := octDay(1)
		end := octDay(31)

		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
			Kind:      &kind,
			Category:  "Groceries",
		}, adapter.TransactionPagination{Page: 1, Limit: 50})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 2 {
			t.Errorf("expected total 2, got %d", result.Total)
		}
		for _, txn := range result.Transactions {
			if txn.Category != "Groceries" {
				t.Errorf("expected only Groceries, got %s", txn.Category)
			}
		}
	})

	t.Run("FindByFilter category match is case-sensitive", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		mustCreate(t, repo, userID, octDay(2), entity.TransactionKindExpense, "groceries", 10)
		mustCreate(t, repo, userID, octDay(3), entity.TransactionKindExpense, "Groceries", 20)

		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:   userID,
			Category: "Groceries",
		}, adapter.TransactionPagination{Page: 1, Limit: 50})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 1 {
			t.Fatalf("expected total 1, got %d", result.Total)
		}
		if result.Transactions[0].Category != "Groceries" {
			t.Errorf("expected Groceries, got %s", result.Transactions[0].Category)
		}
	})

	t.Run("FindByFilter paginates and reports total pages", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		for d := 1; d <= 5; d++ {
			mustCreate(t, repo, userID, octDay(d), entity.TransactionKindExpense, "Bills", 10)
		}

		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID: userID,
		}, adapter.TransactionPagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 5 {
			t.Errorf("expected total 5, got %d", result.Total)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
		if len(result.Transactions) != 2 {
			t.Errorf("expected 2 transactions on page 2, got %d", len(result.Transactions))
		}
	})

	t.Run("Delete soft-deletes and hides the record", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		txn := mustCreate(t, repo, userID, octDay(5), entity.TransactionKindExpense, "Groceries", 75.50)

		if err := repo.Delete(ctx, txn.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		transactions, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected deleted transaction to be hidden, got %d records", len(transactions))
		}

		exists, err := repo.ExistsByIDAndUser(ctx, txn.ID, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if exists {
			t.Error("expected ExistsByIDAndUser to be false after delete")
		}
	})

	t.Run("ExistsByIDAndUser rejects foreign ownership", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		owner := uuid.New()

		txn := mustCreate(t, repo, owner, octDay(5), entity.TransactionKindExpense, "Groceries", 75.50)

		exists, err := repo.ExistsByIDAndUser(ctx, txn.ID, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if exists {
			t.Error("expected false for a different user")
		}

		exists, err = repo.ExistsByIDAndUser(ctx, txn.ID, owner)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !exists {
			t.Error("expected true for the owner")
		}
	})

	t.Run("round-trips amounts and normalized dates", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		userID := uuid.New()

		created := mustCreate(t, repo, userID, time.Date(2023, 10, 5, 18, 45, 0, 0, time.UTC),
			entity.TransactionKindExpense, "Groceries", 75.50)

		loaded, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !loaded.Amount.Equal(decimal.NewFromFloat(75.50)) {
			t.Errorf("expected amount 75.50, got %s", loaded.Amount)
		}
		if !loaded.Date.Equal(octDay(5)) {
			t.Errorf("expected normalized date %v, got %v", octDay(5), loaded.Date)
		}
	})
}
