package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// TrafficShaper provides coarse per-IP request shaping across all
// endpoints. It is a transport-level guard; the action limiter in
// app/security enforces the per-operation counting rules.
type TrafficShaper struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
}

// ipLimiter holds a rate limiter and the last time it was seen.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewTrafficShaper creates a per-IP shaper allowing r requests per second
// with the given burst.
func NewTrafficShaper(r rate.Limit, burst int) *TrafficShaper {
	ts := &TrafficShaper{
		limiters: make(map[string]*ipLimiter),
		rate:     r,
		burst:    burst,
	}
	go ts.cleanupLoop()
	return ts
}

// getLimiter returns the limiter for the given IP, creating one if needed.
func (ts *TrafficShaper) getLimiter(ip string) *rate.Limiter {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if l, exists := ts.limiters[ip]; exists {
		l.lastSeen = time.Now()
		return l.limiter
	}

	limiter := rate.NewLimiter(ts.rate, ts.burst)
	ts.limiters[ip] = &ipLimiter{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

// cleanupLoop removes stale entries every 3 minutes.
func (ts *TrafficShaper) cleanupLoop() {
	ticker := time.NewTicker(3 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ts.mu.Lock()
		for ip, l := range ts.limiters {
			if time.Since(l.lastSeen) > 5*time.Minute {
				delete(ts.limiters, ip)
			}
		}
		ts.mu.Unlock()
	}
}

// Middleware returns an Echo middleware that enforces the shaping limit.
func (ts *TrafficShaper) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			limiter := ts.getLimiter(ip)

			if !limiter.Allow() {
				retryAfter := max(int(1.0/float64(ts.rate)), 1)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
