package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type cachedSummary struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
}

func newTestCache(t *testing.T) (*SummaryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSummaryCache(client), mr
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, 3, 2026, cachedSummary{
		TotalIncome:  "1200.00",
		TotalExpense: "800.00",
	}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got cachedSummary
	hit, err := cache.Get(context.Background(), userID, 3, 2026, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() hit = false, want true")
	}
	if got.TotalIncome != "1200.00" || got.TotalExpense != "800.00" {
		t.Errorf("Get() = %+v, want stored summary", got)
	}
}

func TestSummaryCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got cachedSummary
	hit, err := cache.Get(context.Background(), uuid.New(), 3, 2026, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true for empty cache")
	}
}

func TestSummaryCachePeriodsAreIndependent(t *testing.T) {
	cache, _ := newTestCache(t)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, 3, 2026, cachedSummary{TotalIncome: "10.00"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got cachedSummary
	hit, err := cache.Get(context.Background(), userID, 4, 2026, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true for a different month")
	}
}

func TestSummaryCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, 3, 2026, cachedSummary{TotalIncome: "10.00"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Invalidate(context.Background(), userID, 3, 2026); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	var got cachedSummary
	hit, err := cache.Get(context.Background(), userID, 3, 2026, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true after Invalidate()")
	}
}

func TestSummaryCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, 3, 2026, cachedSummary{TotalIncome: "10.00"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(defaultSummaryTTL + time.Second)

	var got cachedSummary
	hit, err := cache.Get(context.Background(), userID, 3, 2026, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true after TTL elapsed")
	}
}
