package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// record is the counter for one key.
type record struct {
	count     int
	resetTime time.Time
}

// MemoryStore is an in-process Store. Counters are per process, so it only
// fits single-instance deployments; use RedisStore otherwise.
type MemoryStore struct {
	records map[string]*record
	mu      sync.Mutex
	now     func() time.Time

	sweepInterval time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
}

// NewMemoryStore creates a MemoryStore. When sweepInterval is positive a
// goroutine drops expired records at that interval until Stop is called.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		records:       make(map[string]*record),
		now:           time.Now,
		sweepInterval: sweepInterval,
		stopCh:        make(chan struct{}),
	}

	if sweepInterval > 0 {
		go s.sweepLoop()
	}

	return s
}

// Admit implements Store.
func (s *MemoryStore) Admit(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.records[key]
	if !exists || now.After(r.resetTime) {
		s.records[key] = &record{count: 1, resetTime: now.Add(window)}
		return true, nil
	}

	if r.count >= limit {
		return false, nil
	}

	r.count++
	return true, nil
}

// Sweep removes records whose window has ended and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key, r := range s.records {
		if now.After(r.resetTime) {
			delete(s.records, key)
			deleted++
		}
	}

	return deleted
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Stop stops the sweep goroutine.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if deleted := s.Sweep(); deleted > 0 {
				slog.Debug("Rate limiter cleanup",
					"deleted", deleted,
					"remaining", s.Len(),
				)
			}
		case <-s.stopCh:
			return
		}
	}
}
