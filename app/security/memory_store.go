package security

import (
	"context"
	"sync"
	"time"

	"workbook-auth/app/port"
)

// MemoryStore is the in-process CounterStore: a mutex-guarded map of
// fixed-window records. Default for tests and single-instance deployments.
type MemoryStore struct {
	clock port.Clock

	mu      sync.Mutex
	records map[string]port.CounterRecord
}

// NewMemoryStore creates an in-memory counter store.
func NewMemoryStore(clock port.Clock) *MemoryStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MemoryStore{
		clock:   clock,
		records: make(map[string]port.CounterRecord),
	}
}

// Increment implements port.CounterStore. The read-modify-write runs under
// the store lock so concurrent hits on the same key never lose counts.
//
// Window semantics: a missing or elapsed record resets to {1, now+window}
// and allows. A live record at or over the limit denies without
// incrementing; otherwise count goes up by one and the call is allowed.
func (s *MemoryStore) Increment(ctx context.Context, key string, limit int, window time.Duration) (bool, port.CounterRecord, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[key]
	if !exists || !now.Before(rec.WindowResetAt) {
		rec = port.CounterRecord{Count: 1, WindowResetAt: now.Add(window)}
		s.records[key] = rec
		return true, rec, nil
	}

	if rec.Count >= limit {
		return false, rec, nil
	}

	rec.Count++
	s.records[key] = rec
	return true, rec, nil
}

// Get implements port.CounterStore. An elapsed record reads as absent.
func (s *MemoryStore) Get(ctx context.Context, key string) (port.CounterRecord, bool, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[key]
	if !exists || !now.Before(rec.WindowResetAt) {
		return port.CounterRecord{}, false, nil
	}
	return rec, true, nil
}

// Size reports how many records the store currently holds, elapsed or not.
func (s *MemoryStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// StartSweeping runs Sweep every interval until the returned stop function
// is called. Keeps a long-lived process from accumulating elapsed records
// for every IP it has ever counted.
func (s *MemoryStore) StartSweeping(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// Sweep drops elapsed records. Callers may run it periodically to bound
// memory on a long-lived process.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.records {
		if !now.Before(rec.WindowResetAt) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}
