// Package entity contains domain entities for the application.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetLimit represents a per-category spending ceiling for one month.
//
// CurrentSpent is maintained by the ingestion pipeline; it only moves
// through the atomic apply operation in the budget repository.
type BudgetLimit struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Category     string
	MonthlyLimit decimal.Decimal
	CurrentSpent decimal.Decimal
	Month        int
	Year         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudgetLimit creates a new BudgetLimit with zero spend and a generated ID.
func NewBudgetLimit(userID uuid.UUID, category string, monthlyLimit decimal.Decimal, month, year int) *BudgetLimit {
	now := time.Now().UTC()
	return &BudgetLimit{
		ID:           uuid.New(),
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
		CurrentSpent: decimal.Zero,
		Month:        month,
		Year:         year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Remaining returns limit minus spent. It goes negative once the
// budget is exceeded.
func (b *BudgetLimit) Remaining() decimal.Decimal {
	return b.MonthlyLimit.Sub(b.CurrentSpent)
}

// PercentageUsed returns spent over limit as a percentage, rounded to
// two decimal places. A non-positive limit yields 0.
func (b *BudgetLimit) PercentageUsed() float64 {
	if b.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := b.CurrentSpent.
		Div(b.MonthlyLimit).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return pct
}

// IsExceeded reports whether spending has crossed the ceiling.
func (b *BudgetLimit) IsExceeded() bool {
	return b.CurrentSpent.GreaterThan(b.MonthlyLimit)
}
