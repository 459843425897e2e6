// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Categorizer assigns a category label to an entry description.
// Implementations must bound the call with a timeout; a failure here is
// never fatal to the caller, the entry just stays pending.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
}

// ForecastService produces a spending forecast from a user's entry history.
// The payload is passed through opaquely from the external service.
type ForecastService interface {
	Forecast(ctx context.Context, req ForecastRequest) (map[string]any, error)
}

// ForecastRequest is the input to a forecast call.
type ForecastRequest struct {
	UserID  string
	Entries []ForecastEntry
}

// ForecastEntry is one history item sent to the forecast service.
type ForecastEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Direction   string `json:"direction"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}
