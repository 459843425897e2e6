// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache caches computed dashboard summaries per user and period.
// Get reports a miss with (false, nil); cache failures must not fail the
// request, callers fall back to recomputing.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID, month, year int, dest any) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, month, year int, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID, month, year int) error
}
