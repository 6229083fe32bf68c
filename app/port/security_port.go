package port

//go:generate mockgen -source=security_port.go -destination=../mocks/mock_security_port.go -package=mock_port

import (
	"context"
	"time"

	"workbook-auth/app/domain"
)

// Clock abstracts time for the rate limiter so window boundaries are
// testable.
type Clock interface {
	Now() time.Time
}

// CounterRecord is one fixed-window counter. Count only moves up within a
// window; the record is replaced, never decremented, when the window rolls.
type CounterRecord struct {
	Count         int       `json:"count"`
	WindowResetAt time.Time `json:"window_reset_at"`
}

// CounterStore is the key-value contract behind the action limiter. The
// in-process implementation serves tests and single-instance deployments;
// the Redis implementation serves shared deployments. Mutations per key
// must be atomic read-modify-write.
type CounterStore interface {
	// Increment applies the fixed-window rule for key under (limit, window)
	// and reports whether the call is allowed, along with the record state
	// after the call.
	Increment(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, rec CounterRecord, err error)
	// Get returns the current record without mutating it.
	Get(ctx context.Context, key string) (CounterRecord, bool, error)
}

// ActionLimiter guards sensitive operations with per-identity counters and
// escalating lockouts.
type ActionLimiter interface {
	// CheckAndIncrement applies the fixed-window rule for (action,
	// identity). Policy lives with the caller: limit and window are
	// supplied per call.
	CheckAndIncrement(ctx context.Context, action, identity string, limit int, window time.Duration) (bool, error)
	// IsLockedOut reports whether an identity is under an escalated block,
	// independent of any counting window.
	IsLockedOut(ctx context.Context, identity string) bool
	// RecordViolation notes a denied attempt; repeated violations escalate
	// to a timed lockout.
	RecordViolation(ctx context.Context, identity string)
}

// EventRecorder is the append-only security event log.
type EventRecorder interface {
	Record(event domain.SecurityEvent)
	// Query returns the most recent events, newest first, optionally
	// filtered to those at or after since.
	Query(limit int, since time.Time) []domain.SecurityEvent
	// RecentFailures counts auth_failure events for an identity within the
	// trailing window.
	RecentFailures(identity string, window time.Duration) int
}
