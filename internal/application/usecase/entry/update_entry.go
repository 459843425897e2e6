// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for updating an entry. Nil
// fields are left unchanged.
type UpdateEntryInput struct {
	UserID      uuid.UUID
	EntryID     uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Notes       *string
	OccurredAt  *time.Time
}

// UpdateEntryOutput represents the output of updating an entry.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry updates.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute updates an entry, enforcing ownership. Setting a category by
// hand also moves a pending entry to categorized. Updates never touch
// budget spend; only the ingestion pipeline does that.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
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

	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
	if input.OccurredAt != nil {
		entry.OccurredAt = *input.OccurredAt
	}
	if input.Category != nil {
		entry.MarkCategorized(*input.Category)
	}

	if err := validateEntryInput(entry.Description, entry.Notes, entry.Amount, entry.Direction); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()
	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: entry}, nil
}
