// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// The composite unique index enforces one budget per category and month.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_period"`
	Category     string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_owner_period"`
	Month        int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period"`
	Year         int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentSpent decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain BudgetLimit entity.
func (m *BudgetModel) ToEntity() *entity.BudgetLimit {
	return &entity.BudgetLimit{
		ID:           m.ID,
		UserID:       m.UserID,
		Category:     m.Category,
		MonthlyLimit: m.MonthlyLimit,
		CurrentSpent: m.CurrentSpent,
		Month:        m.Month,
		Year:         m.Year,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromBudgetEntity creates a BudgetModel from a domain BudgetLimit entity.
func FromBudgetEntity(budget *entity.BudgetLimit) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		UserID:       budget.UserID,
		Category:     budget.Category,
		Month:        budget.Month,
		Year:         budget.Year,
		MonthlyLimit: budget.MonthlyLimit,
		CurrentSpent: budget.CurrentSpent,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}

// BudgetApplicationModel records that an entry's amount has been applied
// to a budget. The unique entry_id makes the apply idempotent: a second
// attempt for the same entry fails the insert and is treated as done.
type BudgetApplicationModel struct {
	EntryID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AppliedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetApplicationModel.
func (BudgetApplicationModel) TableName() string {
	return "budget_applications"
}
