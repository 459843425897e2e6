// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// EntryFilter narrows down entry listing.
type EntryFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Status    *entity.EntryStatus
}

// EntryTotals holds income and expense sums over a period.
type EntryTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategorySpend holds the expense sum for one category.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// EntryRepository defines the interface for ledger entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByUser retrieves entries matching the filter, most recent first.
	FindByUser(ctx context.Context, filter EntryFilter) ([]*entity.Entry, error)

	// FindRecent retrieves the user's most recent entries.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Entry, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetTotals returns income and expense sums for a user over a date range.
	GetTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*EntryTotals, error)

	// GetSpendingByCategory returns per-category expense sums over a date range.
	GetSpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategorySpend, error)
}
