// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets. Month and
// Year default to the current month when zero.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetLimit
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute lists the user's budgets for a month.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	month, year := input.Month, input.Year
	if month == 0 || year == 0 {
		now := time.Now().UTC()
		month, year = int(now.Month()), now.Year()
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
