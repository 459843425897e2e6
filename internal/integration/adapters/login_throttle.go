// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
)

const throttleShardCount = 32

// attemptRecord tracks failures for one identity.
type attemptRecord struct {
	failures    int
	lastFailure time.Time
}

// throttleShard holds a slice of the identity space behind its own lock,
// so unrelated identities don't serialize against each other.
type throttleShard struct {
	mu      sync.Mutex
	records map[string]*attemptRecord
}

// loginThrottle implements adapter.LoginThrottle with an in-process
// sharded map. State is intentionally not persisted: a restart clears
// all lockouts.
type loginThrottle struct {
	shards    [throttleShardCount]*throttleShard
	threshold int
	lockout   time.Duration
	now       func() time.Time
}

// NewLoginThrottle creates a login throttle that locks an identity out
// for the lockout duration once threshold failures accumulate.
func NewLoginThrottle(threshold int, lockout time.Duration) adapter.LoginThrottle {
	t := &loginThrottle{
		threshold: threshold,
		lockout:   lockout,
		now:       time.Now,
	}
	for i := range t.shards {
		t.shards[i] = &throttleShard{records: make(map[string]*attemptRecord)}
	}
	return t
}

// NewLoginThrottleWithClock creates a throttle with an injected clock
// (useful for testing lockout expiry).
func NewLoginThrottleWithClock(threshold int, lockout time.Duration, now func() time.Time) adapter.LoginThrottle {
	t := NewLoginThrottle(threshold, lockout).(*loginThrottle)
	t.now = now
	return t
}

func (t *loginThrottle) shard(identity string) *throttleShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return t.shards[h.Sum32()%throttleShardCount]
}

// RecordFailure registers one failed attempt for the identity.
func (t *loginThrottle) RecordFailure(identity string) {
	s := t.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identity]
	if !ok || t.expired(rec) {
		rec = &attemptRecord{}
		s.records[identity] = rec
	}
	rec.failures++
	rec.lastFailure = t.now()
}

// RecordSuccess clears the identity's failure record unconditionally.
func (t *loginThrottle) RecordSuccess(identity string) {
	s := t.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, identity)
}

// IsLocked reports whether the identity has reached the failure
// threshold within the lockout window. Expired records are purged on
// check rather than by a background sweep.
func (t *loginThrottle) IsLocked(identity string) bool {
	s := t.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identity]
	if !ok {
		return false
	}
	if t.expired(rec) {
		delete(s.records, identity)
		return false
	}
	return rec.failures >= t.threshold
}

// RemainingAttempts returns how many failures are left before lockout.
func (t *loginThrottle) RemainingAttempts(identity string) int {
	s := t.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identity]
	if !ok || t.expired(rec) {
		return t.threshold
	}
	remaining := t.threshold - rec.failures
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *loginThrottle) expired(rec *attemptRecord) bool {
	return t.now().Sub(rec.lastFailure) > t.lockout
}
