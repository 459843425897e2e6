// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// GetEntryInput represents the input for retrieving a single entry.
type GetEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// GetEntryOutput represents the output of retrieving a single entry.
type GetEntryOutput struct {
	Entry *entity.Entry
}

// GetEntryUseCase handles single entry retrieval.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute retrieves an entry, enforcing ownership.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
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

	return &GetEntryOutput{Entry: entry}, nil
}
