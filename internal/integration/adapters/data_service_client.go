// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
)

// DataServiceClient talks to the external data service over HTTP. It
// implements both adapter.Categorizer and adapter.ForecastService.
//
// Every call is bounded by the configured timeout so a slow classifier
// cannot stall the ingestion pipeline.
type DataServiceClient struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewDataServiceClient creates a new data service client.
func NewDataServiceClient(baseURL string, timeout time.Duration) *DataServiceClient {
	return &DataServiceClient{
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

type categorizeRequest struct {
	Description string `json:"description"`
}

type categorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Categorize asks the data service for a category label.
func (c *DataServiceClient) Categorize(ctx context.Context, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp categorizeResponse
	if err := c.postJSON(ctx, "/api/v1/categorize", categorizeRequest{Description: description}, &resp); err != nil {
		return "", err
	}
	if resp.Category == "" {
		return "", fmt.Errorf("data service returned an empty category")
	}
	return resp.Category, nil
}

type forecastRequest struct {
	UserID       string                  `json:"user_id"`
	Transactions []adapter.ForecastEntry `json:"transactions"`
}

// Forecast asks the data service for a spending forecast. The response
// is passed through untouched.
func (c *DataServiceClient) Forecast(ctx context.Context, req adapter.ForecastRequest) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp map[string]any
	body := forecastRequest{UserID: req.UserID, Transactions: req.Entries}
	if err := c.postJSON(ctx, "/api/v1/forecast", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *DataServiceClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("data service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("data service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode data service response: %w", err)
	}
	return nil
}

var (
	_ adapter.Categorizer     = (*DataServiceClient)(nil)
	_ adapter.ForecastService = (*DataServiceClient)(nil)
)
