// Package entity contains domain entities for the application.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDirection represents whether an entry is money in or money out.
type EntryDirection string

const (
	// EntryDirectionIncome represents money received.
	EntryDirectionIncome EntryDirection = "income"
	// EntryDirectionExpense represents money spent.
	EntryDirectionExpense EntryDirection = "expense"
)

// IsValid checks whether the direction is one of the known values.
func (d EntryDirection) IsValid() bool {
	return d == EntryDirectionIncome || d == EntryDirectionExpense
}

// EntryStatus represents the categorization state of an entry.
type EntryStatus string

const (
	// EntryStatusPending means the entry has not been categorized yet.
	EntryStatusPending EntryStatus = "pending"
	// EntryStatusCategorized means a category has been assigned.
	EntryStatusCategorized EntryStatus = "categorized"
)

// Entry represents a single ledger entry (an income or an expense).
//
// Notes hold free-form text in plaintext at the domain level; the
// persistence layer is responsible for encrypting them at rest.
type Entry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Direction   EntryDirection
	Category    *string
	Status      EntryStatus
	Notes       string
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates a new pending Entry with a generated ID.
func NewEntry(userID uuid.UUID, description string, amount decimal.Decimal, direction EntryDirection, occurredAt time.Time, notes string) *Entry {
	now := time.Now().UTC()
	return &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Direction:   direction,
		Category:    nil,
		Status:      EntryStatusPending,
		Notes:       notes,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkCategorized assigns a category and flips the status.
func (e *Entry) MarkCategorized(category string) {
	e.Category = &category
	e.Status = EntryStatusCategorized
	e.UpdatedAt = time.Now().UTC()
}

// IsExpense reports whether the entry is an expense.
func (e *Entry) IsExpense() bool {
	return e.Direction == EntryDirectionExpense
}
