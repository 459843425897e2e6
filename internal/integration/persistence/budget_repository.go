// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget. Duplicates on (user, category, month,
// year) are rejected by the composite unique index and surfaced as
// ErrBudgetAlreadyExists.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.BudgetLimit) error {
	budgetModel := model.FromBudgetEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrBudgetAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLimit, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndPeriod retrieves all budgets of a user for a month.
func (r *budgetRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.BudgetLimit, error) {
	var budgetModels []model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category ASC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*entity.BudgetLimit, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, budgetModels[i].ToEntity())
	}
	return budgets, nil
}

// FindByUserCategoryPeriod retrieves the single budget matching
// (user, category, month, year).
func (r *budgetRepository) FindByUserCategoryPeriod(ctx context.Context, userID uuid.UUID, category string, month, year int) (*entity.BudgetLimit, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND month = ? AND year = ?", userID, category, month, year).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// Update updates the budget ceiling.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.BudgetLimit) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]any{
			"monthly_limit": budget.MonthlyLimit,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// ApplyEntrySpend atomically adds amount to the budget's current spend,
// at most once per entry.
//
// The per-entry application row and the SQL-side increment commit in
// one transaction: concurrent applies serialize on the row update and
// cannot lose increments, and a retry for an already-applied entry hits
// the application row's primary key and becomes a no-op.
func (r *budgetRepository) ApplyEntrySpend(ctx context.Context, budgetID, entryID uuid.UUID, amount decimal.Decimal) (*entity.BudgetLimit, bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		application := &model.BudgetApplicationModel{
			EntryID:   entryID,
			BudgetID:  budgetID,
			Amount:    amount,
			AppliedAt: time.Now().UTC(),
		}
		if err := tx.Create(application).Error; err != nil {
			if isUniqueViolation(err) {
				// This entry was already applied.
				return nil
			}
			return err
		}

		result := tx.Model(&model.BudgetModel{}).
			Where("id = ?", budgetID).
			Updates(map[string]any{
				"current_spent": gorm.Expr("current_spent + ?", amount),
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBudgetNotFound
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	budget, err := r.FindByID(ctx, budgetID)
	if err != nil {
		return nil, applied, err
	}
	return budget, applied, nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
// It understands the postgres driver, gorm's translated error, and the
// sqlite message used by the integration tests.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
