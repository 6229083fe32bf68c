package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// AuthUsecase implements the session lifecycle: login, verify, refresh,
// logout and the permission check. Identity confirmation is delegated to
// the membership resolver combined with the shared access-code check.
type AuthUsecase struct {
	resolver   port.MembershipResolver
	issuer     port.TokenIssuer
	verifier   port.TokenVerifier
	recorder   port.EventRecorder
	accessCode string
	logger     *slog.Logger
}

// NewAuthUsecase creates the auth usecase.
func NewAuthUsecase(
	resolver port.MembershipResolver,
	issuer port.TokenIssuer,
	verifier port.TokenVerifier,
	recorder port.EventRecorder,
	accessCode string,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		resolver:   resolver,
		issuer:     issuer,
		verifier:   verifier,
		recorder:   recorder,
		accessCode: accessCode,
		logger:     logger.With("component", "auth_usecase"),
	}
}

// Login implements port.AuthUsecase. Format failures are decided locally
// before any source is consulted. All failure paths return the same
// generic error; the internal category lands in the security event log
// only.
func (uc *AuthUsecase) Login(ctx context.Context, email, accessCode string, rc port.RateContext) (*port.LoginResult, error) {
	email = domain.NormalizeEmail(email)

	uc.recorder.Record(domain.SecurityEvent{
		Type:      domain.EventAuthAttempt,
		Email:     email,
		ClientIP:  rc.ClientIP,
		UserAgent: rc.UserAgent,
	})

	if err := domain.ValidateEmail(email); err != nil {
		return nil, uc.fail(email, rc, domain.FailureInvalidEmail, err)
	}
	if len(accessCode) < 8 || len(accessCode) > 128 {
		return nil, uc.fail(email, rc, domain.FailureInvalidPassword, domain.ErrInvalidInput)
	}

	member, found, err := uc.resolver.Resolve(ctx, email)
	if err != nil {
		return nil, uc.fail(email, rc, domain.FailureNotMember, err)
	}
	if !found {
		// Indistinguishable from a wrong code at the client boundary.
		return nil, uc.fail(email, rc, domain.FailureNotMember, nil)
	}
	if !member.IsActive {
		return nil, uc.fail(email, rc, domain.FailureInactiveMember, nil)
	}

	if subtle.ConstantTimeCompare([]byte(accessCode), []byte(uc.accessCode)) != 1 {
		return nil, uc.fail(email, rc, domain.FailureWrongAccessCode, nil)
	}

	result, err := uc.mint(member)
	if err != nil {
		return nil, fmt.Errorf("mint tokens: %w", err)
	}

	uc.recorder.Record(domain.SecurityEvent{
		Type:      domain.EventAuthSuccess,
		UserID:    result.User.UserID.String(),
		Email:     email,
		ClientIP:  rc.ClientIP,
		UserAgent: rc.UserAgent,
		Details:   map[string]string{"role": string(result.User.Role)},
	})

	return result, nil
}

// Verify implements port.AuthUsecase. Pure token decode plus claim checks;
// typed failures propagate from the verifier.
func (uc *AuthUsecase) Verify(ctx context.Context, accessToken string) (*domain.SessionContext, error) {
	return uc.verifier.VerifyAccessToken(accessToken)
}

// Refresh implements port.AuthUsecase. Role and permissions are looked up
// afresh so a tier change between login and refresh lands in the new
// access token. The refresh token is not rotated.
func (uc *AuthUsecase) Refresh(ctx context.Context, refreshToken string, rc port.RateContext) (*port.LoginResult, error) {
	userID, email, err := uc.verifier.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	member, found, err := uc.resolver.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found || !member.IsActive {
		return nil, domain.ErrUnauthorized
	}

	role := domain.RoleFromMembership(member.MembershipType)
	perms := domain.PermissionsForRole(role)

	accessToken, accessExpiry, err := uc.issuer.IssueAccessToken(member, role, perms)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	uc.recorder.Record(domain.SecurityEvent{
		Type:      domain.EventTokenRefresh,
		UserID:    userID,
		Email:     member.Email,
		ClientIP:  rc.ClientIP,
		UserAgent: rc.UserAgent,
	})

	return &port.LoginResult{
		Tokens: domain.TokenPair{
			AccessToken:     accessToken,
			AccessExpiresAt: accessExpiry,
			// The presented refresh token stays valid; the handler keeps
			// its existing cookie.
		},
		User: domain.UserInfo{
			UserID:      member.UserID(),
			Email:       member.Email,
			DisplayName: member.DisplayName,
			Role:        role,
			Permissions: perms,
		},
	}, nil
}

// Logout implements port.AuthUsecase. There is no server-side revocation
// list; the tokens simply age out after the handler clears the cookies.
func (uc *AuthUsecase) Logout(ctx context.Context, session *domain.SessionContext, rc port.RateContext) {
	uc.recorder.Record(domain.SecurityEvent{
		Type:      domain.EventLogout,
		UserID:    session.UserID.String(),
		Email:     session.Email,
		ClientIP:  rc.ClientIP,
		UserAgent: rc.UserAgent,
	})
}

// HasPermission implements port.AuthUsecase.
func (uc *AuthUsecase) HasPermission(session *domain.SessionContext, p domain.Permission) bool {
	return session.HasPermission(p)
}

func (uc *AuthUsecase) mint(member *domain.Member) (*port.LoginResult, error) {
	role := domain.RoleFromMembership(member.MembershipType)
	perms := domain.PermissionsForRole(role)

	accessToken, accessExpiry, err := uc.issuer.IssueAccessToken(member, role, perms)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := uc.issuer.IssueRefreshToken(member)
	if err != nil {
		return nil, err
	}

	return &port.LoginResult{
		Tokens: domain.TokenPair{
			AccessToken:      accessToken,
			AccessExpiresAt:  accessExpiry,
			RefreshToken:     refreshToken,
			RefreshExpiresAt: refreshExpiry,
		},
		User: domain.UserInfo{
			UserID:      member.UserID(),
			Email:       member.Email,
			DisplayName: member.DisplayName,
			Role:        role,
			Permissions: perms,
		},
	}, nil
}

// fail records an auth_failure with its internal category and returns the
// generic authentication error.
func (uc *AuthUsecase) fail(email string, rc port.RateContext, category string, cause error) error {
	details := map[string]string{"category": category}
	uc.recorder.Record(domain.SecurityEvent{
		Type:      domain.EventAuthFailure,
		Email:     email,
		ClientIP:  rc.ClientIP,
		UserAgent: rc.UserAgent,
		Details:   details,
	})
	if cause != nil {
		uc.logger.Debug("login failed", "category", category, "error", cause)
	}
	return domain.NewAuthError(category, cause)
}
