// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/application/usecase/dashboard"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetSummaryUseCase
	forecastUseCase *dashboard.GetForecastUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	forecastUseCase *dashboard.GetForecastUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		forecastUseCase: forecastUseCase,
	}
}

// Summary handles GET /dashboard/summary requests. Month and year default
// to the current period.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query dto.SummaryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	now := time.Now().UTC()
	if query.Month == 0 {
		query.Month = int(now.Month())
	}
	if query.Year == 0 {
		query.Year = now.Year()
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Month:  query.Month,
		Year:   query.Year,
	})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: budgetErr.Message,
				Code:  string(budgetErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Forecast handles GET /dashboard/forecast requests.
func (c *DashboardController) Forecast(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), dashboard.GetForecastInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Forecast service unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ForecastResponse{Forecast: output.Forecast})
}
