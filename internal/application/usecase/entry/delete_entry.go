// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for deleting an entry.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteEntryOutput represents the output of deleting an entry.
type DeleteEntryOutput struct {
	Message string
}

// DeleteEntryUseCase handles entry deletion.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute deletes an entry, enforcing ownership.
//
// Budget spend already applied by this entry is deliberately left in
// place: current_spent records what was spent during the month, and a
// deleted record of the expense does not undo the spending.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				err,
			)
		}
		return nil, err
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryAccessDenied,
			"not authorized to access this entry",
			domainerror.ErrNotAuthorizedToAccessEntry,
		)
	}

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return &DeleteEntryOutput{Message: "Entry deleted successfully"}, nil
}
