// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Status    *entity.EntryStatus
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.Entry
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute lists the user's entries, most recent first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByUser(ctx, adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return &ListEntriesOutput{Entries: entries}, nil
}
