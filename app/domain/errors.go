package domain

import "errors"

// Authentication and authorization errors
var (
	// ErrAuthenticationFailed is the single generic failure returned to
	// clients. Wrong access code and unknown member are deliberately
	// indistinguishable at this boundary to prevent account enumeration.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("insufficient permission")

	// Token errors, surfaced as typed verification failures
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("expired token")
	ErrMalformedToken = errors.New("malformed token")
	ErrWrongTokenType = errors.New("wrong token type")

	// Rate limiting errors
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrLockedOut         = errors.New("temporarily locked out")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable marks an identity source that could not be
	// consulted. The resolver swallows it per source; it never reaches the
	// end user as a distinct error.
	ErrSourceUnavailable = errors.New("identity source unavailable")
)

// AuthError carries an internal failure category alongside the generic
// client-facing message. The category feeds security event logging only.
type AuthError struct {
	Category string
	Cause    error
}

func (e *AuthError) Error() string {
	return ErrAuthenticationFailed.Error()
}

func (e *AuthError) Unwrap() error {
	return ErrAuthenticationFailed
}

// NewAuthError creates an authentication error with an internal category.
func NewAuthError(category string, cause error) *AuthError {
	return &AuthError{Category: category, Cause: cause}
}

// Internal failure categories recorded in security events. Never put raw
// secrets or the matched source in these.
const (
	FailureInvalidEmail    = "invalid_email"
	FailureInvalidPassword = "invalid_password"
	FailureNotMember       = "not_a_member"
	FailureInactiveMember  = "inactive_member"
	FailureWrongAccessCode = "wrong_access_code"
)
