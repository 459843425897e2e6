// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/application/usecase/budget"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	getUseCase    *budget.GetBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBudgetMissingFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
		Month:        req.Month,
		Year:         req.Year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query dto.ListBudgetsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  query.Month,
		Year:   query.Year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBudgetMissingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		UserID:       userID,
		BudgetID:     budgetID,
		MonthlyLimit: req.MonthlyLimit,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidLimit,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeBudgetMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAccessDenied:
		return http.StatusForbidden
	case domainerror.ErrCodeBudgetExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
