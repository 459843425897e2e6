// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed description length.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed notes length.
	MaxNotesLength = 1000

	// budgetApplyRetries bounds how often a failed budget apply is retried.
	budgetApplyRetries = 3
)

// RecordEntryInput represents the input for recording a ledger entry.
type RecordEntryInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Direction   entity.EntryDirection
	OccurredAt  time.Time
	Notes       string
}

// RecordEntryOutput represents the result of recording a ledger entry.
// CategorizationPending is true when the classifier was unavailable and
// the entry was left pending; that is not an error.
type RecordEntryOutput struct {
	Entry                 *entity.Entry
	CategorizationPending bool
}

// RecordEntryUseCase runs the ingestion pipeline for a new entry:
// validate, persist pending, categorize, persist categorized, apply the
// amount to a matching budget.
type RecordEntryUseCase struct {
	entryRepo   adapter.EntryRepository
	budgetRepo  adapter.BudgetRepository
	userRepo    adapter.UserRepository
	categorizer adapter.Categorizer
	alertSender adapter.BudgetAlertSender
}

// NewRecordEntryUseCase creates a new RecordEntryUseCase instance.
// alertSender may be nil, which disables overspend notifications.
func NewRecordEntryUseCase(
	entryRepo adapter.EntryRepository,
	budgetRepo adapter.BudgetRepository,
	userRepo adapter.UserRepository,
	categorizer adapter.Categorizer,
	alertSender adapter.BudgetAlertSender,
) *RecordEntryUseCase {
	return &RecordEntryUseCase{
		entryRepo:   entryRepo,
		budgetRepo:  budgetRepo,
		userRepo:    userRepo,
		categorizer: categorizer,
		alertSender: alertSender,
	}
}

// Execute records a new ledger entry.
//
// Validation failures happen before anything is persisted. A
// categorization failure leaves a valid pending entry behind and is
// reported through the output, not as an error. Budget application is
// atomic and idempotent per entry; a still-failing apply after the
// bounded retries is surfaced to the caller.
func (uc *RecordEntryUseCase) Execute(ctx context.Context, input RecordEntryInput) (*RecordEntryOutput, error) {
	if err := validateEntryInput(input.Description, input.Notes, input.Amount, input.Direction); err != nil {
		return nil, err
	}

	entry := entity.NewEntry(input.UserID, input.Description, input.Amount, input.Direction, input.OccurredAt, input.Notes)
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	category, err := uc.categorizer.Categorize(ctx, input.Description)
	if err != nil {
		slog.Warn("categorization failed, entry stays pending",
			"entry_id", entry.ID,
			"error", err,
		)
		return &RecordEntryOutput{Entry: entry, CategorizationPending: true}, nil
	}

	entry.MarkCategorized(category)
	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry after categorization: %w", err)
	}

	if entry.IsExpense() {
		if err := uc.applyToBudget(ctx, entry); err != nil {
			return nil, err
		}
	}

	return &RecordEntryOutput{Entry: entry}, nil
}

// applyToBudget adds the entry amount to the matching budget for the
// current month, if one exists. The apply is retried a bounded number
// of times; persistent failure is surfaced, never silently dropped.
func (uc *RecordEntryUseCase) applyToBudget(ctx context.Context, entry *entity.Entry) error {
	now := time.Now().UTC()
	budget, err := uc.budgetRepo.FindByUserCategoryPeriod(ctx, entry.UserID, *entry.Category, int(now.Month()), now.Year())
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up budget: %w", err)
	}

	var (
		updated *entity.BudgetLimit
		applied bool
		lastErr error
	)
	for attempt := 1; attempt <= budgetApplyRetries; attempt++ {
		updated, applied, lastErr = uc.budgetRepo.ApplyEntrySpend(ctx, budget.ID, entry.ID, entry.Amount)
		if lastErr == nil {
			break
		}
		slog.Warn("budget apply failed",
			"entry_id", entry.ID,
			"budget_id", budget.ID,
			"attempt", attempt,
			"error", lastErr,
		)
	}
	if lastErr != nil {
		return domainerror.NewEntryError(
			domainerror.ErrCodeBudgetApplyFailed,
			"failed to apply entry to budget",
			lastErr,
		)
	}

	if applied && updated.IsExceeded() {
		uc.notifyOverspend(entry.UserID, updated)
	}
	return nil
}

// notifyOverspend sends the budget-exceeded alert in the background.
// Delivery is best effort; the pipeline result does not depend on it.
func (uc *RecordEntryUseCase) notifyOverspend(userID uuid.UUID, budget *entity.BudgetLimit) {
	if uc.alertSender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := uc.userRepo.FindByID(ctx, userID)
		if err != nil {
			slog.Warn("overspend alert skipped, user lookup failed", "user_id", userID, "error", err)
			return
		}
		if err := uc.alertSender.SendBudgetExceeded(ctx, user.Email, user.Name, budget); err != nil {
			slog.Warn("overspend alert delivery failed", "user_id", userID, "error", err)
		}
	}()
}

// validateEntryInput checks the invariants shared by record and update.
func validateEntryInput(description, notes string, amount decimal.Decimal, direction entity.EntryDirection) error {
	if !direction.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDirection,
			"direction must be income or expense",
			domainerror.ErrInvalidEntryDirection,
		)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if description == "" || len(description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if len(notes) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}
