package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store tracks per-identity request counts in a fixed time window. One Store
// instance is constructed at startup and shared by every call site, so
// checks against different limits draw from the same per-identity budget.
type Store interface {
	// Limited reports whether identity has exhausted limit requests in the
	// current window. A non-limited call consumes one unit of budget.
	Limited(ctx context.Context, identity string, limit int) bool
	// Clear drops the current window for identity.
	Clear(ctx context.Context, identity string)
}

type record struct {
	count   int
	resetAt time.Time
}

// MemoryStore is the in-process fixed-window counter. State is lost on
// restart and not shared across instances; a multi-instance deployment
// should use the Redis store instead.
type MemoryStore struct {
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	records map[string]*record
}

type MemoryOption func(*MemoryStore)

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(window time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		window:  window,
		now:     time.Now,
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Limited(_ context.Context, identity string, limit int) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identity]
	if !ok || now.After(rec.resetAt) {
		s.records[identity] = &record{count: 1, resetAt: now.Add(s.window)}
		return false
	}

	if rec.count >= limit {
		// Stop counting at the cap; repeated calls while limited keep
		// returning limited without further mutation.
		return true
	}

	rec.count++
	return false
}

func (s *MemoryStore) Clear(_ context.Context, identity string) {
	s.mu.Lock()
	delete(s.records, identity)
	s.mu.Unlock()
}

// ResetAt returns when the identity's current window elapses. Zero time
// means the identity has no active window.
func (s *MemoryStore) ResetAt(identity string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[identity]; ok {
		return rec.resetAt
	}
	return time.Time{}
}
