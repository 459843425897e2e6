// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget. A budget for the same
	// (user, category, month, year) must not already exist; when it
	// does, ErrBudgetAlreadyExists is returned.
	Create(ctx context.Context, budget *entity.BudgetLimit) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLimit, error)

	// FindByUserAndPeriod retrieves all budgets of a user for a month.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.BudgetLimit, error)

	// FindByUserCategoryPeriod retrieves the single budget matching
	// (user, category, month, year), or ErrBudgetNotFound.
	FindByUserCategoryPeriod(ctx context.Context, userID uuid.UUID, category string, month, year int) (*entity.BudgetLimit, error)

	// Update updates the budget ceiling.
	Update(ctx context.Context, budget *entity.BudgetLimit) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyEntrySpend atomically adds amount to the budget's current
	// spend, at most once per entry. The increment and the per-entry
	// application record are committed in one database transaction, so
	// a retried call for the same entry is a no-op. It returns the
	// budget state after the call and whether this call applied the
	// amount.
	ApplyEntrySpend(ctx context.Context, budgetID, entryID uuid.UUID, amount decimal.Decimal) (*entity.BudgetLimit, bool, error)
}
