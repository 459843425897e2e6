// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// recentEntryLimit is how many recent entries the summary includes.
const recentEntryLimit = 10

// GetSummaryInput represents the input for getting a dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetSummaryOutput represents the dashboard summary for one month.
type GetSummaryOutput struct {
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	TotalIncome    decimal.Decimal  `json:"total_income"`
	TotalExpense   decimal.Decimal  `json:"total_expense"`
	MonthlySavings decimal.Decimal  `json:"monthly_savings"`
	TotalBalance   decimal.Decimal  `json:"total_balance"`
	ByCategory     []CategorySpend  `json:"by_category"`
	Budgets        []BudgetProgress `json:"budgets"`
	RecentEntries  []*entity.Entry  `json:"recent_entries"`
}

// CategorySpend represents expense totals for one category.
type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetProgress represents a budget and how much of it is used.
type BudgetProgress struct {
	Budget         *entity.BudgetLimit `json:"budget"`
	Remaining      decimal.Decimal     `json:"remaining"`
	PercentageUsed float64             `json:"percentage_used"`
	Exceeded       bool                `json:"exceeded"`
}

// GetSummaryUseCase assembles the monthly dashboard summary. Results are
// cached per user and period; the cache is optional and best effort.
type GetSummaryUseCase struct {
	entryRepo  adapter.EntryRepository
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance. cache may
// be nil, in which case every call recomputes.
func NewGetSummaryUseCase(
	entryRepo adapter.EntryRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		entryRepo:  entryRepo,
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute computes the summary for the given month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if uc.cache != nil {
		var cached GetSummaryOutput
		hit, err := uc.cache.Get(ctx, input.UserID, input.Month, input.Year, &cached)
		if err != nil {
			slog.Warn("summary cache read failed", "error", err, "user_id", input.UserID)
		} else if hit {
			return &cached, nil
		}
	}

	start := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	monthTotals, err := uc.entryRepo.GetTotals(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	allTimeTotals, err := uc.entryRepo.GetTotals(ctx, input.UserID, time.Time{}, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get all-time totals: %w", err)
	}

	byCategory, err := uc.entryRepo.GetSpendingByCategory(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending by category: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	recent, err := uc.entryRepo.FindRecent(ctx, input.UserID, recentEntryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent entries: %w", err)
	}

	output := &GetSummaryOutput{
		Month:          input.Month,
		Year:           input.Year,
		TotalIncome:    monthTotals.Income,
		TotalExpense:   monthTotals.Expense,
		MonthlySavings: monthTotals.Income.Sub(monthTotals.Expense),
		TotalBalance:   allTimeTotals.Income.Sub(allTimeTotals.Expense),
		ByCategory:     make([]CategorySpend, 0, len(byCategory)),
		Budgets:        make([]BudgetProgress, 0, len(budgets)),
		RecentEntries:  recent,
	}
	for _, spend := range byCategory {
		output.ByCategory = append(output.ByCategory, CategorySpend{
			Category: spend.Category,
			Total:    spend.Total,
		})
	}
	for _, budget := range budgets {
		output.Budgets = append(output.Budgets, BudgetProgress{
			Budget:         budget,
			Remaining:      budget.Remaining(),
			PercentageUsed: budget.PercentageUsed(),
			Exceeded:       budget.IsExceeded(),
		})
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, input.Month, input.Year, output); err != nil {
			slog.Warn("summary cache write failed", "error", err, "user_id", input.UserID)
		}
	}

	return output, nil
}
