package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mock_port

import (
	"context"
	"time"

	"workbook-auth/app/domain"
)

// RateContext carries the request attributes relevant to abuse detection.
type RateContext struct {
	ClientIP  string
	UserAgent string
}

// LoginResult bundles the minted credentials and the redacted user payload.
type LoginResult struct {
	Tokens domain.TokenPair
	User   domain.UserInfo
}

// AuthUsecase defines the session lifecycle business logic.
type AuthUsecase interface {
	// Login authenticates an email/access-code pair. The caller must have
	// already passed the login rate-limit pre-check for rc.ClientIP.
	Login(ctx context.Context, email, accessCode string, rc RateContext) (*LoginResult, error)

	// Verify decodes and checks an access token, returning the session
	// context or a typed failure (ErrInvalidToken, ErrExpiredToken,
	// ErrMalformedToken).
	Verify(ctx context.Context, accessToken string) (*domain.SessionContext, error)

	// Refresh mints a new access token from a valid refresh token. Role and
	// permissions are re-resolved; stale claims never propagate. The refresh
	// token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string, rc RateContext) (*LoginResult, error)

	// Logout records the logout event. Credential destruction is implicit:
	// the handler clears cookies and the tokens age out.
	Logout(ctx context.Context, session *domain.SessionContext, rc RateContext)

	// HasPermission checks a capability against the session's fixed set.
	HasPermission(session *domain.SessionContext, p domain.Permission) bool
}

// TokenIssuer mints signed session credentials.
type TokenIssuer interface {
	IssueAccessToken(member *domain.Member, role domain.Role, perms []domain.Permission) (string, time.Time, error)
	IssueRefreshToken(member *domain.Member) (string, time.Time, error)
}

// TokenVerifier validates signed session credentials.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*domain.SessionContext, error)
	// VerifyRefreshToken returns the user ID and email the refresh token
	// was issued for.
	VerifyRefreshToken(token string) (userID, email string, err error)
}
