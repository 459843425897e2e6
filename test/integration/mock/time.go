package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock for tests. It tracks real time plus an
// offset that scenarios can advance to cross time windows.
type Time struct {
	mu     sync.Mutex
	offset time.Duration
}

func NewTime() *Time {
	return &Time{}
}

// Advance shifts the clock forward by d.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset += d
}

// Reset drops any accumulated offset.
func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = 0
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Now().Add(t.offset)
}
