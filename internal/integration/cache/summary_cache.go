// Package cache provides Redis-backed caching for read-heavy endpoints.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// defaultSummaryTTL bounds staleness of cached dashboard summaries.
const defaultSummaryTTL = 5 * time.Minute

// SummaryCache stores serialized dashboard summaries keyed by user and period.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache with the default TTL.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client, ttl: defaultSummaryTTL}
}

func summaryKey(userID uuid.UUID, month, year int) string {
	return fmt.Sprintf("dashboard:summary:%s:%d:%d", userID, year, month)
}

// Get returns the cached summary for the given period, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, userID uuid.UUID, month, year int, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID, month, year)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return true, nil
}

// Set stores a summary for the given period.
func (c *SummaryCache) Set(ctx context.Context, userID uuid.UUID, month, year int, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode summary for cache: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey(userID, month, year), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary for the given period. Called after
// writes that change the period's totals.
func (c *SummaryCache) Invalidate(ctx context.Context, userID uuid.UUID, month, year int) error {
	if err := c.client.Del(ctx, summaryKey(userID, month, year)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
