// Package budget contains budget use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DeleteBudgetOutput represents the output of deleting a budget.
type DeleteBudgetOutput struct {
	Message string
}

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes a budget, enforcing ownership.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) (*DeleteBudgetOutput, error) {
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

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID); err != nil {
		return nil, fmt.Errorf("failed to delete budget: %w", err)
	}

	return &DeleteBudgetOutput{Message: "Budget deleted successfully"}, nil
}
