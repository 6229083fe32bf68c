package security

import (
	"github.com/prometheus/client_golang/prometheus"

	"workbook-auth/app/domain"
)

// Metrics exposes recorder-derived counters for scraping.
type Metrics struct {
	authAttempts   prometheus.Counter
	authSuccesses  prometheus.Counter
	authFailures   prometheus.Counter
	tokenRefreshes prometheus.Counter
	suspicious     prometheus.Counter
	rateLimited    prometheus.Counter
}

// NewMetrics creates and registers the auth counters on the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		authAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "auth_attempts_total",
			Help:      "Total login attempts.",
		}),
		authSuccesses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "auth_successes_total",
			Help:      "Total successful logins.",
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "auth_failures_total",
			Help:      "Total failed logins.",
		}),
		tokenRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "token_refreshes_total",
			Help:      "Total access token refreshes.",
		}),
		suspicious: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "suspicious_activity_total",
			Help:      "Total suspicious activity detections.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workbook_auth",
			Name:      "rate_limited_total",
			Help:      "Total requests denied by rate limiting or lockout.",
		}),
	}

	reg.MustRegister(
		m.authAttempts,
		m.authSuccesses,
		m.authFailures,
		m.tokenRefreshes,
		m.suspicious,
		m.rateLimited,
	)
	return m
}

// ObserveRateLimited counts a 429 denial.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimited.Inc()
}

func (m *Metrics) observe(eventType domain.SecurityEventType) {
	switch eventType {
	case domain.EventAuthAttempt:
		m.authAttempts.Inc()
	case domain.EventAuthSuccess:
		m.authSuccesses.Inc()
	case domain.EventAuthFailure:
		m.authFailures.Inc()
	case domain.EventTokenRefresh:
		m.tokenRefreshes.Inc()
	case domain.EventSuspiciousActivity:
		m.suspicious.Inc()
	}
}
