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

// UpdateBudgetInput represents the input for updating a budget ceiling.
type UpdateBudgetInput struct {
	UserID       uuid.UUID
	BudgetID     uuid.UUID
	MonthlyLimit decimal.Decimal
}

// UpdateBudgetOutput represents the output of updating a budget.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetLimit
}

// UpdateBudgetUseCase handles budget updates. Only the ceiling can be
// edited; current spend moves exclusively through the pipeline.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute updates a budget's monthly limit, enforcing ownership.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimit,
			"monthly limit must be positive",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				err,
			)
		}
		return nil, err
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAccessDenied,
			"not authorized to access this budget",
			domainerror.ErrNotAuthorizedToAccessBudget,
		)
	}

	budget.MonthlyLimit = input.MonthlyLimit
	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
