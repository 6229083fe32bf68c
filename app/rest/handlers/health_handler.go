package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// HealthHandler serves liveness plus an operator view of auth health
// derived from the security event log.
type HealthHandler struct {
	recorder port.EventRecorder
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(recorder port.EventRecorder, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		recorder: recorder,
		logger:   logger,
	}
}

// HealthCheck handles GET /v1/health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "workbook-auth",
	})
}

// AuthHealthResponse is the derived auth-health view. Computing the rates
// here keeps the event store itself a plain append/query contract.
type AuthHealthResponse struct {
	WindowMinutes  int     `json:"window_minutes"`
	Attempts       int     `json:"attempts"`
	Successes      int     `json:"successes"`
	Failures       int     `json:"failures"`
	FailureRate    float64 `json:"failure_rate"`
	Suspicious     int     `json:"suspicious"`
	TokenRefreshes int     `json:"token_refreshes"`

	// Set only when the request names an identity to drill into.
	IdentityFailures *int `json:"identity_failures,omitempty"`
}

// AuthHealth handles GET /v1/health/auth: counts over the trailing 15
// minutes of recorded events. An optional ?identity= query drills into the
// failure count for one email or client IP.
func (h *HealthHandler) AuthHealth(c echo.Context) error {
	const window = 15 * time.Minute
	events := h.recorder.Query(0, time.Now().Add(-window))

	resp := AuthHealthResponse{WindowMinutes: int(window.Minutes())}
	for _, event := range events {
		switch event.Type {
		case domain.EventAuthAttempt:
			resp.Attempts++
		case domain.EventAuthSuccess:
			resp.Successes++
		case domain.EventAuthFailure:
			resp.Failures++
		case domain.EventSuspiciousActivity:
			resp.Suspicious++
		case domain.EventTokenRefresh:
			resp.TokenRefreshes++
		}
	}
	if total := resp.Successes + resp.Failures; total > 0 {
		resp.FailureRate = float64(resp.Failures) / float64(total)
	}

	if identity := c.QueryParam("identity"); identity != "" {
		count := h.recorder.RecentFailures(domain.NormalizeEmail(identity), window)
		resp.IdentityFailures = &count
	}

	return c.JSON(http.StatusOK, resp)
}
