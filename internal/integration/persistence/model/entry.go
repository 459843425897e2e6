// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
//
// Notes hold the encrypted form; the repository runs the field cipher
// at this conversion boundary, the model itself never sees plaintext.
type EntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction   string          `gorm:"type:varchar(10);not null"`
	Category    *string         `gorm:"type:varchar(100)"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes       string          `gorm:"type:text"`
	OccurredAt  time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity. Notes are
// carried over as stored; the caller decrypts them.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Direction:   entity.EntryDirection(m.Direction),
		Category:    m.Category,
		Status:      entity.EntryStatus(m.Status),
		Notes:       m.Notes,
		OccurredAt:  m.OccurredAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromEntryEntity creates an EntryModel from a domain Entry entity with
// the already-encrypted notes value.
func FromEntryEntity(entry *entity.Entry, encryptedNotes string) *EntryModel {
	return &EntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Description: entry.Description,
		Amount:      entry.Amount,
		Direction:   string(entry.Direction),
		Category:    entry.Category,
		Status:      string(entry.Status),
		Notes:       encryptedNotes,
		OccurredAt:  entry.OccurredAt,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
