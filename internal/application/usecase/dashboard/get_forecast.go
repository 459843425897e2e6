// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
)

// forecastHistoryMonths is how far back entry history is sent for forecasting.
const forecastHistoryMonths = 6

// GetForecastInput represents the input for getting a spending forecast.
type GetForecastInput struct {
	UserID uuid.UUID
}

// GetForecastOutput wraps the forecast payload from the external service.
type GetForecastOutput struct {
	Forecast map[string]any `json:"forecast"`
}

// GetForecastUseCase proxies the user's recent entry history to the
// forecast service.
type GetForecastUseCase struct {
	entryRepo       adapter.EntryRepository
	forecastService adapter.ForecastService
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(
	entryRepo adapter.EntryRepository,
	forecastService adapter.ForecastService,
) *GetForecastUseCase {
	return &GetForecastUseCase{
		entryRepo:       entryRepo,
		forecastService: forecastService,
	}
}

// Execute fetches recent history and requests a forecast.
func (uc *GetForecastUseCase) Execute(ctx context.Context, input GetForecastInput) (*GetForecastOutput, error) {
	start := time.Now().UTC().AddDate(0, -forecastHistoryMonths, 0)
	entries, err := uc.entryRepo.FindByUser(ctx, adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: &start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load entry history: %w", err)
	}

	req := adapter.ForecastRequest{
		UserID:  input.UserID.String(),
		Entries: make([]adapter.ForecastEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		category := ""
		if entry.Category != nil {
			category = *entry.Category
		}
		req.Entries = append(req.Entries, adapter.ForecastEntry{
			ID:          entry.ID.String(),
			Description: entry.Description,
			Amount:      entry.Amount.String(),
			Direction:   string(entry.Direction),
			Category:    category,
			Date:        entry.OccurredAt.Format(time.RFC3339),
		})
	}

	forecast, err := uc.forecastService.Forecast(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return &GetForecastOutput{Forecast: forecast}, nil
}
