package security

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"workbook-auth/app/port"
)

// LockoutPolicy controls how repeated rate-limit violations escalate to a
// timed block. The lockout duration is deliberately decoupled from the
// counting window.
type LockoutPolicy struct {
	// Threshold is the number of violations that triggers a lockout.
	Threshold int
	// ObservationWindow is how long violations are remembered.
	ObservationWindow time.Duration
	// Duration is how long a triggered lockout lasts.
	Duration time.Duration
}

// DefaultLockoutPolicy locks an identity out for 30 minutes after 3
// violations observed within an hour.
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		Threshold:         3,
		ObservationWindow: time.Hour,
		Duration:          30 * time.Minute,
	}
}

type lockoutState struct {
	violations  int
	firstAt     time.Time
	lockedUntil time.Time
}

// Limiter guards sensitive operations with fixed-window counters and an
// escalating lockout. Counters live in the injected CounterStore so the
// same limiter works against process memory or a shared Redis; lockout
// state is local per instance.
type Limiter struct {
	store  port.CounterStore
	clock  port.Clock
	policy LockoutPolicy
	logger *slog.Logger

	mu       sync.Mutex
	lockouts map[string]*lockoutState
}

// NewLimiter creates an action limiter over the given counter store.
func NewLimiter(store port.CounterStore, clock port.Clock, policy LockoutPolicy, logger *slog.Logger) *Limiter {
	if clock == nil {
		clock = SystemClock{}
	}
	if policy.Threshold <= 0 {
		policy = DefaultLockoutPolicy()
	}
	return &Limiter{
		store:    store,
		clock:    clock,
		policy:   policy,
		logger:   logger.With("component", "action_limiter"),
		lockouts: make(map[string]*lockoutState),
	}
}

// CheckAndIncrement implements port.ActionLimiter. Policy lives with the
// caller: limit and window arrive per call so login can run a tight 5/15m
// rule while content actions run role-sized quotas over the same limiter.
func (l *Limiter) CheckAndIncrement(ctx context.Context, action, identity string, limit int, window time.Duration) (bool, error) {
	allowed, _, err := l.store.Increment(ctx, action+":"+identity, limit, window)
	if err != nil {
		return false, err
	}
	if !allowed {
		l.logger.Warn("rate limit exceeded",
			"action", action,
			"limit", limit,
			"window", window.String())
	}
	return allowed, nil
}

// IsLockedOut implements port.ActionLimiter.
func (l *Limiter) IsLockedOut(ctx context.Context, identity string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.lockouts[identity]
	if !ok {
		return false
	}
	if now.Before(state.lockedUntil) {
		return true
	}
	if now.Sub(state.firstAt) > l.policy.ObservationWindow {
		delete(l.lockouts, identity)
	}
	return false
}

// RecordViolation implements port.ActionLimiter. Violations accumulate
// within the observation window; crossing the threshold starts a lockout.
func (l *Limiter) RecordViolation(ctx context.Context, identity string) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.lockouts[identity]
	if !ok || now.Sub(state.firstAt) > l.policy.ObservationWindow {
		state = &lockoutState{firstAt: now}
		l.lockouts[identity] = state
	}

	state.violations++
	if state.violations >= l.policy.Threshold && now.After(state.lockedUntil) {
		state.lockedUntil = now.Add(l.policy.Duration)
		l.logger.Warn("identity locked out",
			"violations", state.violations,
			"locked_until", state.lockedUntil.Format(time.RFC3339))
	}
}
