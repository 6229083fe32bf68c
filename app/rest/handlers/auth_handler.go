package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
	"workbook-auth/app/security"
	apperrors "workbook-auth/app/utils/errors"
	"workbook-auth/app/utils/validator"
)

// Cookie names for the two session credentials.
const (
	AccessCookieName  = "workbook_access_token"
	RefreshCookieName = "workbook_refresh_token"
)

// Rate-limit action names.
const (
	ActionLogin   = "login"
	ActionRefresh = "refresh"
)

// LoginPolicy is the per-IP counting rule applied before any resolution
// work happens.
type LoginPolicy struct {
	Limit        int
	Window       time.Duration
	RefreshLimit int
}

// DefaultLoginPolicy allows 5 login attempts per 15 minutes per IP.
func DefaultLoginPolicy() LoginPolicy {
	return LoginPolicy{Limit: 5, Window: 15 * time.Minute, RefreshLimit: 30}
}

// CookiePolicy controls how the credential cookies are scoped.
type CookiePolicy struct {
	Path   string
	Secure bool
}

// AuthHandler handles the session lifecycle HTTP endpoints.
type AuthHandler struct {
	authUsecase port.AuthUsecase
	limiter     port.ActionLimiter
	validator   *validator.Validator
	metrics     *security.Metrics
	login       LoginPolicy
	cookies     CookiePolicy
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(
	authUsecase port.AuthUsecase,
	limiter port.ActionLimiter,
	metrics *security.Metrics,
	login LoginPolicy,
	cookies CookiePolicy,
	logger *slog.Logger,
) *AuthHandler {
	if login.Limit <= 0 {
		login = DefaultLoginPolicy()
	}
	if cookies.Path == "" {
		cookies.Path = "/workbook"
	}
	return &AuthHandler{
		authUsecase: authUsecase,
		limiter:     limiter,
		validator:   validator.New(),
		metrics:     metrics,
		login:       login,
		cookies:     cookies,
		logger:      logger,
	}
}

// ErrorResponse is the uniform error payload. It never carries secrets,
// remaining-attempt counts, or which identity source matched.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError writes an AppError using its mapped status code.
func respondError(c echo.Context, appErr *apperrors.AppError) error {
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}

// LoginRequest is the login body shape.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	AccessCode string `json:"access_code" validate:"required,access_code"`
}

// LoginResponse returns the redacted user payload plus the access token
// for API clients; browser clients rely on the cookies.
type LoginResponse struct {
	User            domain.UserInfo `json:"user"`
	AccessToken     string          `json:"access_token"`
	AccessExpiresAt time.Time       `json:"access_expires_at"`
}

// Login handles POST /v1/auth/login. The rate-limit pre-check runs before
// any resolution work so a locked-out IP never reaches the cascade.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	rc := rateContext(c)

	if h.limiter.IsLockedOut(ctx, rc.ClientIP) {
		return h.tooManyRequests(c, h.login.Window)
	}

	allowed, err := h.limiter.CheckAndIncrement(ctx, ActionLogin, rc.ClientIP, h.login.Limit, h.login.Window)
	if err != nil {
		h.logger.Error("rate limit check failed", "error", err)
		return respondError(c, apperrors.New(apperrors.ErrCodeInternalError, "internal error"))
	}
	if !allowed {
		h.limiter.RecordViolation(ctx, rc.ClientIP)
		return h.tooManyRequests(c, h.login.Window)
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.New(apperrors.ErrCodeBadRequest, "malformed request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, apperrors.New(apperrors.ErrCodeValidationFailed, err.Error()))
	}

	result, err := h.authUsecase.Login(ctx, req.Email, req.AccessCode, rc)
	if err != nil {
		// One wording for every failure path; enumeration gets nothing.
		return respondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "authentication failed"))
	}

	h.setSessionCookies(c, result.Tokens)

	return c.JSON(http.StatusOK, LoginResponse{
		User:            result.User,
		AccessToken:     result.Tokens.AccessToken,
		AccessExpiresAt: result.Tokens.AccessExpiresAt,
	})
}

// Refresh handles POST /v1/auth/refresh. Accepts the refresh cookie or a
// bearer token; mints a new access token only.
func (h *AuthHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	rc := rateContext(c)

	if h.limiter.IsLockedOut(ctx, rc.ClientIP) {
		return h.tooManyRequests(c, h.login.Window)
	}
	allowed, err := h.limiter.CheckAndIncrement(ctx, ActionRefresh, rc.ClientIP, h.login.RefreshLimit, h.login.Window)
	if err != nil {
		h.logger.Error("rate limit check failed", "error", err)
		return respondError(c, apperrors.New(apperrors.ErrCodeInternalError, "internal error"))
	}
	if !allowed {
		h.limiter.RecordViolation(ctx, rc.ClientIP)
		return h.tooManyRequests(c, h.login.Window)
	}

	refreshToken := h.extractToken(c, RefreshCookieName)
	if refreshToken == "" {
		return respondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "authentication required"))
	}

	result, err := h.authUsecase.Refresh(ctx, refreshToken, rc)
	if err != nil {
		return respondError(c, apperrors.New(tokenFailureCode(err), "authentication failed"))
	}

	// New access cookie only; the refresh cookie stays as presented.
	h.setCookie(c, AccessCookieName, result.Tokens.AccessToken, result.Tokens.AccessExpiresAt)

	return c.JSON(http.StatusOK, LoginResponse{
		User:            result.User,
		AccessToken:     result.Tokens.AccessToken,
		AccessExpiresAt: result.Tokens.AccessExpiresAt,
	})
}

// Verify handles GET /v1/auth/verify. Accepts the access cookie or an
// Authorization bearer header and returns the decoded identity.
func (h *AuthHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()

	accessToken := h.extractToken(c, AccessCookieName)
	if accessToken == "" {
		return respondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "authentication required"))
	}

	session, err := h.authUsecase.Verify(ctx, accessToken)
	if err != nil {
		return respondError(c, apperrors.New(tokenFailureCode(err), "invalid session"))
	}

	return c.JSON(http.StatusOK, session)
}

// Logout handles POST /v1/auth/logout. Requires authentication; clears
// both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	session, ok := c.Get("session").(*domain.SessionContext)
	if !ok {
		return respondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "authentication required"))
	}

	h.authUsecase.Logout(ctx, session, rateContext(c))
	h.clearSessionCookies(c)

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) tooManyRequests(c echo.Context, window time.Duration) error {
	if h.metrics != nil {
		h.metrics.ObserveRateLimited()
	}
	// Retry hint only; remaining attempts are never disclosed.
	c.Response().Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
	return respondError(c, apperrors.New(apperrors.ErrCodeRateLimitExceeded, "too many requests, try again later"))
}

// extractToken pulls a credential from the named cookie or the
// Authorization header.
func (h *AuthHandler) extractToken(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func (h *AuthHandler) setSessionCookies(c echo.Context, tokens domain.TokenPair) {
	h.setCookie(c, AccessCookieName, tokens.AccessToken, tokens.AccessExpiresAt)
	h.setCookie(c, RefreshCookieName, tokens.RefreshToken, tokens.RefreshExpiresAt)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookies.Path,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     h.cookies.Path,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookies.Secure,
			SameSite: http.SameSiteStrictMode,
		})
	}
}

// tokenFailureCode maps typed verification failures to response codes. The
// message stays generic either way.
func tokenFailureCode(err error) apperrors.ErrorCode {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return apperrors.ErrCodeTokenExpired
	case errors.Is(err, domain.ErrMalformedToken):
		return apperrors.ErrCodeMalformedToken
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrWrongTokenType):
		return apperrors.ErrCodeInvalidToken
	default:
		return apperrors.ErrCodeUnauthorized
	}
}

func rateContext(c echo.Context) port.RateContext {
	return port.RateContext{
		ClientIP:  c.RealIP(),
		UserAgent: c.Request().Header.Get("User-Agent"),
	}
}
