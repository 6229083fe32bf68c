package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook-auth/app/domain"
	"workbook-auth/app/security"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	recorder := security.NewRecorder(10, security.DefaultSuspicionRule(), nil, nil, testLogger())
	handler := NewHealthHandler(recorder, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "workbook-auth", resp["service"])
}

func TestHealthHandler_AuthHealth(t *testing.T) {
	recorder := security.NewRecorder(100, security.DefaultSuspicionRule(), nil, nil, testLogger())
	handler := NewHealthHandler(recorder, testLogger())

	for i := 0; i < 4; i++ {
		recorder.Record(domain.SecurityEvent{Type: domain.EventAuthAttempt, Email: "a@example.com"})
	}
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthSuccess, Email: "a@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "b@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "b@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "b@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventTokenRefresh, Email: "a@example.com"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/health/auth", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.AuthHealth(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AuthHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.WindowMinutes)
	assert.Equal(t, 4, resp.Attempts)
	assert.Equal(t, 1, resp.Successes)
	assert.Equal(t, 3, resp.Failures)
	assert.InDelta(t, 0.75, resp.FailureRate, 0.001)
	assert.Equal(t, 1, resp.TokenRefreshes)
	assert.Equal(t, 0, resp.Suspicious)
}

func TestHealthHandler_AuthHealth_IdentityDrilldown(t *testing.T) {
	recorder := security.NewRecorder(100, security.DefaultSuspicionRule(), nil, nil, testLogger())
	handler := NewHealthHandler(recorder, testLogger())

	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "b@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "b@example.com"})
	recorder.Record(domain.SecurityEvent{Type: domain.EventAuthFailure, Email: "c@example.com"})

	e := echo.New()

	// The identity is normalized before the lookup.
	req := httptest.NewRequest(http.MethodGet, "/v1/health/auth?identity=B@Example.com", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.AuthHealth(e.NewContext(req, rec)))

	var resp AuthHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.IdentityFailures)
	assert.Equal(t, 2, *resp.IdentityFailures)

	// Without the query param the field stays out of the payload.
	req = httptest.NewRequest(http.MethodGet, "/v1/health/auth", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, handler.AuthHealth(e.NewContext(req, rec)))
	assert.NotContains(t, rec.Body.String(), "identity_failures")
}

func TestHealthHandler_AuthHealth_Empty(t *testing.T) {
	recorder := security.NewRecorder(10, security.DefaultSuspicionRule(), nil, nil, testLogger())
	handler := NewHealthHandler(recorder, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/health/auth", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.AuthHealth(e.NewContext(req, rec)))

	var resp AuthHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Attempts)
	assert.Zero(t, resp.FailureRate)
}
