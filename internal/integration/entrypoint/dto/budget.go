// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Category     string          `json:"category" binding:"required,min=1,max=100"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
	Month        int             `json:"month" binding:"required,min=1,max=12"`
	Year         int             `json:"year" binding:"required"`
}

// UpdateBudgetRequest represents the request body for updating a budget ceiling.
type UpdateBudgetRequest struct {
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
}

// ListBudgetsQuery represents the query parameters for listing budgets.
type ListBudgetsQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID             string          `json:"id"`
	Category       string          `json:"category"`
	MonthlyLimit   decimal.Decimal `json:"monthly_limit"`
	CurrentSpent   decimal.Decimal `json:"current_spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentage_used"`
	Exceeded       bool            `json:"exceeded"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// ToBudgetResponse converts a domain BudgetLimit entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.BudgetLimit) BudgetResponse {
	return BudgetResponse{
		ID:             budget.ID.String(),
		Category:       budget.Category,
		MonthlyLimit:   budget.MonthlyLimit,
		CurrentSpent:   budget.CurrentSpent,
		Remaining:      budget.Remaining(),
		PercentageUsed: budget.PercentageUsed(),
		Exceeded:       budget.IsExceeded(),
		Month:          budget.Month,
		Year:           budget.Year,
	}
}

// ToBudgetListResponse converts a slice of budgets to a list response.
func ToBudgetListResponse(budgets []*entity.BudgetLimit) BudgetListResponse {
	out := BudgetListResponse{
		Budgets: make([]BudgetResponse, 0, len(budgets)),
		Total:   len(budgets),
	}
	for _, budget := range budgets {
		out.Budgets = append(out.Budgets, ToBudgetResponse(budget))
	}
	return out
}
