// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for recording an entry.
type CreateEntryRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Direction   string          `json:"direction" binding:"required,oneof=income expense"`
	OccurredAt  time.Time       `json:"occurred_at" binding:"required"`
	Notes       string          `json:"notes" binding:"max=1000"`
}

// UpdateEntryRequest represents the request body for updating an entry.
// Nil fields are left unchanged.
type UpdateEntryRequest struct {
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	OccurredAt  *time.Time       `json:"occurred_at,omitempty"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ListEntriesQuery represents the query parameters for listing entries.
type ListEntriesQuery struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Status    *string    `form:"status" binding:"omitempty,oneof=pending categorized"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Category    *string         `json:"category,omitempty"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RecordEntryResponse wraps the recorded entry plus pipeline state.
type RecordEntryResponse struct {
	Entry                 EntryResponse `json:"entry"`
	CategorizationPending bool          `json:"categorization_pending"`
}

// EntryListResponse represents a list of entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID.String(),
		Description: entry.Description,
		Amount:      entry.Amount,
		Direction:   string(entry.Direction),
		Category:    entry.Category,
		Status:      string(entry.Status),
		Notes:       entry.Notes,
		OccurredAt:  entry.OccurredAt,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// ToEntryListResponse converts a slice of entries to a list response.
func ToEntryListResponse(entries []*entity.Entry) EntryListResponse {
	out := EntryListResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
		Total:   len(entries),
	}
	for _, entry := range entries {
		out.Entries = append(out.Entries, ToEntryResponse(entry))
	}
	return out
}
