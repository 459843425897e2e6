// Package budget contains budget use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	Category     string
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
}

// CreateBudgetOutput represents the output of creating a budget.
type CreateBudgetOutput struct {
	Budget *entity.BudgetLimit
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute creates a budget. At most one budget may exist per
// (user, category, month, year); a duplicate fails without modifying
// the existing budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if input.Category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetMissingFields,
			"category is required",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if input.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimit,
			"monthly limit must be positive",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	budget := entity.NewBudgetLimit(input.UserID, input.Category, input.MonthlyLimit, input.Month, input.Year)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetExists,
				"budget already exists for this category and period",
				err,
			)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 1-12 and year must be reasonable",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
