package persistence_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/adapters"
	"github.com/smartspend/backend/internal/integration/persistence"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

func newEntryTestRepo(t *testing.T) (adapter.EntryRepository, *gorm.DB) {
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
	if err := db.AutoMigrate(&model.EntryModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cipher, err := adapters.NewFieldCipher("entry-repository-test-key")
	if err != nil {
		t.Fatalf("failed to create cipher: %v", err)
	}

	return persistence.NewEntryRepository(db, cipher), db
}

func TestEntryNotesEncryptedAtRest(t *testing.T) {
	repo, db := newEntryTestRepo(t)

	notes := "checkup with Dr. Smith"
	entry := entity.NewEntry(uuid.New(), "Clinic visit", decimal.RequireFromString("80.00"), entity.EntryDirectionExpense, time.Now().UTC(), notes)
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	var stored model.EntryModel
	if err := db.Where("id = ?", entry.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored row: %v", err)
	}
	if stored.Notes == "" {
		t.Fatal("stored notes are empty")
	}
	if strings.Contains(stored.Notes, "Dr. Smith") {
		t.Error("stored notes contain plaintext")
	}

	loaded, err := repo.FindByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("failed to load entry: %v", err)
	}
	if loaded.Notes != notes {
		t.Errorf("expected notes %q after decrypt, got %q", notes, loaded.Notes)
	}
}

func TestEntryEmptyNotesStayEmpty(t *testing.T) {
	repo, db := newEntryTestRepo(t)

	entry := entity.NewEntry(uuid.New(), "Bus ticket", decimal.RequireFromString("3.50"), entity.EntryDirectionExpense, time.Now().UTC(), "")
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	var stored model.EntryModel
	if err := db.Where("id = ?", entry.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored row: %v", err)
	}
	if stored.Notes != "" {
		t.Errorf("expected empty notes to pass through, got %q", stored.Notes)
	}
}

func TestEntryCorruptedNotesSurfaceAnError(t *testing.T) {
	repo, db := newEntryTestRepo(t)

	entry := entity.NewEntry(uuid.New(), "Clinic visit", decimal.RequireFromString("80.00"), entity.EntryDirectionExpense, time.Now().UTC(), "sensitive")
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if err := db.Model(&model.EntryModel{}).Where("id = ?", entry.ID).Update("notes", "not-a-ciphertext").Error; err != nil {
		t.Fatalf("failed to corrupt row: %v", err)
	}

	_, err := repo.FindByID(context.Background(), entry.ID)
	if err == nil {
		t.Fatal("expected an error for corrupted notes")
	}
	var secErr *domainerror.SecurityError
	if !errors.As(err, &secErr) {
		t.Errorf("expected a security error, got %v", err)
	}
}

func TestEntryTotalsGroupByDirection(t *testing.T) {
	repo, _ := newEntryTestRepo(t)
	userID := uuid.New()
	now := time.Now().UTC()

	seed := []struct {
		amount    string
		direction entity.EntryDirection
	}{
		{"3000.00", entity.EntryDirectionIncome},
		{"1200.00", entity.EntryDirectionExpense},
		{"300.00", entity.EntryDirectionExpense},
	}
	for _, s := range seed {
		entry := entity.NewEntry(userID, "seed", decimal.RequireFromString(s.amount), s.direction, now, "")
		if err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	totals, err := repo.GetTotals(context.Background(), userID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("GetTotals failed: %v", err)
	}
	if !totals.Income.Equal(decimal.RequireFromString("3000.00")) {
		t.Errorf("expected income 3000.00, got %s", totals.Income)
	}
	if !totals.Expense.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("expected expense 1500.00, got %s", totals.Expense)
	}
}
