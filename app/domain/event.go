package domain

import "time"

// SecurityEventType classifies an authentication or abuse-relevant event.
type SecurityEventType string

const (
	EventAuthAttempt        SecurityEventType = "auth_attempt"
	EventAuthSuccess        SecurityEventType = "auth_success"
	EventAuthFailure        SecurityEventType = "auth_failure"
	EventTokenRefresh       SecurityEventType = "token_refresh"
	EventLogout             SecurityEventType = "logout"
	EventSuspiciousActivity SecurityEventType = "suspicious_activity"
)

// SecurityEvent is an append-only record of an auth-relevant occurrence.
// Events are retained most-recent-N in memory; they are operator-facing and
// never returned to end users.
type SecurityEvent struct {
	Type      SecurityEventType `json:"type"`
	UserID    string            `json:"user_id,omitempty"`
	Email     string            `json:"email,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details,omitempty"`
}
