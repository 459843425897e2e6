// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
//
// Notes are encrypted and decrypted here, at the entity/model
// conversion boundary. The rest of the application only ever sees
// plaintext; the database only ever sees ciphertext.
type entryRepository struct {
	db     *gorm.DB
	cipher adapter.FieldCipher
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB, cipher adapter.FieldCipher) adapter.EntryRepository {
	return &entryRepository{
		db:     db,
		cipher: cipher,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	encryptedNotes, err := r.cipher.Encrypt(entry.Notes)
	if err != nil {
		return err
	}
	entryModel := model.FromEntryEntity(entry, encryptedNotes)
	return r.db.WithContext(ctx).Create(entryModel).Error
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return r.toEntity(&entryModel)
}

// FindByUser retrieves entries matching the filter, most recent first.
func (r *entryRepository) FindByUser(ctx context.Context, filter adapter.EntryFilter) ([]*entity.Entry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filter.EndDate)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var entryModels []model.EntryModel
	if err := query.Order("occurred_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return r.toEntities(entryModels)
}

// FindRecent retrieves the user's most recent entries.
func (r *entryRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(entryModels)
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	encryptedNotes, err := r.cipher.Encrypt(entry.Notes)
	if err != nil {
		return err
	}
	entryModel := model.FromEntryEntity(entry, encryptedNotes)
	result := r.db.WithContext(ctx).Save(entryModel)
	return result.Error
}

// Delete removes an entry from the database.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// GetTotals returns income and expense sums for a user over a date range.
func (r *entryRepository) GetTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.EntryTotals, error) {
	type row struct {
		Direction string
		Total     decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("direction, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, start, end).
		Group("direction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := &adapter.EntryTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, r := range rows {
		switch entity.EntryDirection(r.Direction) {
		case entity.EntryDirectionIncome:
			totals.Income = r.Total
		case entity.EntryDirectionExpense:
			totals.Expense = r.Total
		}
	}
	return totals, nil
}

// GetSpendingByCategory returns per-category expense sums over a date range.
func (r *entryRepository) GetSpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CategorySpend, error) {
	type row struct {
		Category string
		Total    decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND direction = ? AND category IS NOT NULL AND occurred_at >= ? AND occurred_at <= ?",
			userID, string(entity.EntryDirectionExpense), start, end).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spending := make([]adapter.CategorySpend, 0, len(rows))
	for _, r := range rows {
		spending = append(spending, adapter.CategorySpend{Category: r.Category, Total: r.Total})
	}
	return spending, nil
}

func (r *entryRepository) toEntity(entryModel *model.EntryModel) (*entity.Entry, error) {
	entry := entryModel.ToEntity()
	notes, err := r.cipher.Decrypt(entryModel.Notes)
	if err != nil {
		// Corrupted notes are surfaced, never returned as empty.
		return nil, err
	}
	entry.Notes = notes
	return entry, nil
}

func (r *entryRepository) toEntities(entryModels []model.EntryModel) ([]*entity.Entry, error) {
	entries := make([]*entity.Entry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := r.toEntity(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
