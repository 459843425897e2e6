package persistence

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

func newBudgetTestRepo(t *testing.T) (adapter.BudgetRepository, *gorm.DB) {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.BudgetModel{}, &model.BudgetApplicationModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewBudgetRepository(db), db
}

func seedBudget(t *testing.T, repo adapter.BudgetRepository, limit string) *entity.BudgetLimit {
	t.Helper()

	budget := entity.NewBudgetLimit(uuid.New(), "Groceries", decimal.RequireFromString(limit), 6, 2025)
	if err := repo.Create(context.Background(), budget); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	return budget
}

func TestApplyEntrySpendAddsAmount(t *testing.T) {
	repo, _ := newBudgetTestRepo(t)
	budget := seedBudget(t, repo, "100.00")

	updated, applied, err := repo.ApplyEntrySpend(context.Background(), budget.ID, uuid.New(), decimal.RequireFromString("50.00"))
	if err != nil {
		t.Fatalf("ApplyEntrySpend failed: %v", err)
	}
	if !applied {
		t.Error("expected applied to be true")
	}
	if !updated.CurrentSpent.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected current spent 50.00, got %s", updated.CurrentSpent)
	}
	if updated.IsExceeded() {
		t.Error("budget at half its ceiling must not be exceeded")
	}
}

func TestApplyEntrySpendIsIdempotentPerEntry(t *testing.T) {
	repo, db := newBudgetTestRepo(t)
	budget := seedBudget(t, repo, "100.00")
	entryID := uuid.New()
	amount := decimal.RequireFromString("30.00")

	_, applied, err := repo.ApplyEntrySpend(context.Background(), budget.ID, entryID, amount)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if !applied {
		t.Fatal("expected first apply to report applied")
	}

	updated, applied, err := repo.ApplyEntrySpend(context.Background(), budget.ID, entryID, amount)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied {
		t.Error("expected retry for the same entry to be a no-op")
	}
	if !updated.CurrentSpent.Equal(amount) {
		t.Errorf("expected current spent %s after retry, got %s", amount, updated.CurrentSpent)
	}

	var count int64
	if err := db.Model(&model.BudgetApplicationModel{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count applications: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 application row, got %d", count)
	}
}

func TestApplyEntrySpendConcurrentApplicationsSumExactly(t *testing.T) {
	repo, _ := newBudgetTestRepo(t)
	budget := seedBudget(t, repo, "500.00")

	const workers = 20
	amount := decimal.RequireFromString("5.00")

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := repo.ApplyEntrySpend(context.Background(), budget.ID, uuid.New(), amount); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent apply failed: %v", err)
	}

	updated, err := repo.FindByID(context.Background(), budget.ID)
	if err != nil {
		t.Fatalf("failed to reload budget: %v", err)
	}
	want := amount.Mul(decimal.NewFromInt(workers))
	if !updated.CurrentSpent.Equal(want) {
		t.Errorf("expected current spent %s, got %s", want, updated.CurrentSpent)
	}
}

func TestApplyEntrySpendUnknownBudget(t *testing.T) {
	repo, _ := newBudgetTestRepo(t)

	_, _, err := repo.ApplyEntrySpend(context.Background(), uuid.New(), uuid.New(), decimal.RequireFromString("10.00"))
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestCreateDuplicateBudgetLeavesOriginalUnmodified(t *testing.T) {
	repo, _ := newBudgetTestRepo(t)
	original := seedBudget(t, repo, "100.00")

	duplicate := entity.NewBudgetLimit(original.UserID, original.Category, decimal.RequireFromString("999.00"), original.Month, original.Year)
	err := repo.Create(context.Background(), duplicate)
	if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
		t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
	}

	stored, err := repo.FindByID(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("failed to reload original: %v", err)
	}
	if !stored.MonthlyLimit.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("original limit changed, got %s", stored.MonthlyLimit)
	}
}
