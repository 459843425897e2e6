// Package budget contains budget use cases.
package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// GetBudgetInput represents the input for retrieving a single budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of retrieving a single budget.
type GetBudgetOutput struct {
	Budget *entity.BudgetLimit
}

// GetBudgetUseCase handles single budget retrieval.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute retrieves a budget, enforcing ownership.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
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

	return &GetBudgetOutput{Budget: budget}, nil
}
