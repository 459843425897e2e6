// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/dashboard"
)

// SummaryQuery represents the query parameters for the dashboard summary.
type SummaryQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year"`
}

// CategorySpendResponse represents per-category expense totals.
type CategorySpendResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	Month          int                     `json:"month"`
	Year           int                     `json:"year"`
	TotalIncome    decimal.Decimal         `json:"total_income"`
	TotalExpense   decimal.Decimal         `json:"total_expense"`
	MonthlySavings decimal.Decimal         `json:"monthly_savings"`
	TotalBalance   decimal.Decimal         `json:"total_balance"`
	ByCategory     []CategorySpendResponse `json:"by_category"`
	Budgets        []BudgetResponse        `json:"budgets"`
	RecentEntries  []EntryResponse         `json:"recent_entries"`
}

// ForecastResponse wraps the forecast payload.
type ForecastResponse struct {
	Forecast map[string]any `json:"forecast"`
}

// ToSummaryResponse converts a summary use case output to a response DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	resp := SummaryResponse{
		Month:          output.Month,
		Year:           output.Year,
		TotalIncome:    output.TotalIncome,
		TotalExpense:   output.TotalExpense,
		MonthlySavings: output.MonthlySavings,
		TotalBalance:   output.TotalBalance,
		ByCategory:     make([]CategorySpendResponse, 0, len(output.ByCategory)),
		Budgets:        make([]BudgetResponse, 0, len(output.Budgets)),
		RecentEntries:  make([]EntryResponse, 0, len(output.RecentEntries)),
	}
	for _, spend := range output.ByCategory {
		resp.ByCategory = append(resp.ByCategory, CategorySpendResponse{
			Category: spend.Category,
			Total:    spend.Total,
		})
	}
	for _, progress := range output.Budgets {
		resp.Budgets = append(resp.Budgets, ToBudgetResponse(progress.Budget))
	}
	for _, entry := range output.RecentEntries {
		resp.RecentEntries = append(resp.RecentEntries, ToEntryResponse(entry))
	}
	return resp
}
