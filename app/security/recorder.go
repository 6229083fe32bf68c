package security

import (
	"log/slog"
	"sync"
	"time"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// SuspicionRule classifies a cluster of failures for one identity as
// suspicious.
type SuspicionRule struct {
	// FailureThreshold is the number of auth failures that marks a cluster.
	FailureThreshold int
	// Window is the trailing period failures are counted over.
	Window time.Duration
}

// DefaultSuspicionRule flags 5 failures within 15 minutes.
func DefaultSuspicionRule() SuspicionRule {
	return SuspicionRule{FailureThreshold: 5, Window: 15 * time.Minute}
}

// Recorder is the append-only security event log: a bounded ring buffer
// keeping the most recent N events, oldest evicted first. Mutated by any
// request goroutine; all access goes through the mutex.
type Recorder struct {
	capacity int
	rule     SuspicionRule
	clock    port.Clock
	metrics  *Metrics
	logger   *slog.Logger

	mu     sync.Mutex
	events []domain.SecurityEvent
	next   int
	filled bool
}

// NewRecorder creates a bounded event recorder. A nil metrics is valid and
// disables counter updates.
func NewRecorder(capacity int, rule SuspicionRule, clock port.Clock, metrics *Metrics, logger *slog.Logger) *Recorder {
	if capacity <= 0 {
		capacity = 1000
	}
	if rule.FailureThreshold <= 0 {
		rule = DefaultSuspicionRule()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Recorder{
		capacity: capacity,
		rule:     rule,
		clock:    clock,
		metrics:  metrics,
		logger:   logger.With("component", "event_recorder"),
		events:   make([]domain.SecurityEvent, capacity),
	}
}

// Record implements port.EventRecorder. O(1): one slot write plus ring
// bookkeeping. A failure that completes a suspicious cluster appends a
// derived suspicious_activity event in the same call.
func (r *Recorder) Record(event domain.SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = r.clock.Now()
	}

	r.mu.Lock()
	r.append(event)
	suspicious := event.Type == domain.EventAuthFailure &&
		r.failuresLocked(failureIdentity(event), r.rule.Window) == r.rule.FailureThreshold
	if suspicious {
		r.append(domain.SecurityEvent{
			Type:      domain.EventSuspiciousActivity,
			Email:     event.Email,
			ClientIP:  event.ClientIP,
			UserAgent: event.UserAgent,
			Timestamp: event.Timestamp,
			Details: map[string]string{
				"reason": "auth failure cluster",
			},
		})
	}
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.observe(event.Type)
		if suspicious {
			r.metrics.observe(domain.EventSuspiciousActivity)
		}
	}
	if suspicious {
		r.logger.Warn("suspicious activity detected",
			"client_ip", event.ClientIP,
			"failures", r.rule.FailureThreshold,
			"window", r.rule.Window.String())
	}
}

// Query implements port.EventRecorder: most recent events first, optionally
// bounded to those at or after since.
func (r *Recorder) Query(limit int, since time.Time) []domain.SecurityEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.sizeLocked()
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]domain.SecurityEvent, 0, limit)
	for i := 1; i <= size && len(out) < limit; i++ {
		event := r.events[(r.next-i+r.capacity)%r.capacity]
		if !since.IsZero() && event.Timestamp.Before(since) {
			break
		}
		out = append(out, event)
	}
	return out
}

// RecentFailures implements port.EventRecorder.
func (r *Recorder) RecentFailures(identity string, window time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failuresLocked(identity, window)
}

func (r *Recorder) append(event domain.SecurityEvent) {
	r.events[r.next] = event
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.filled = true
	}
}

func (r *Recorder) sizeLocked() int {
	if r.filled {
		return r.capacity
	}
	return r.next
}

func (r *Recorder) failuresLocked(identity string, window time.Duration) int {
	cutoff := r.clock.Now().Add(-window)
	size := r.sizeLocked()

	count := 0
	for i := 1; i <= size; i++ {
		event := r.events[(r.next-i+r.capacity)%r.capacity]
		if event.Timestamp.Before(cutoff) {
			break
		}
		if event.Type == domain.EventAuthFailure && failureIdentity(event) == identity {
			count++
		}
	}
	return count
}

// failureIdentity picks the identity a failure cluster is keyed by: the
// attempted email when present, otherwise the client IP.
func failureIdentity(event domain.SecurityEvent) string {
	if event.Email != "" {
		return event.Email
	}
	return event.ClientIP
}
