package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// AuthMiddleware provides authentication and permission middleware.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	cookieName  string
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(authUsecase port.AuthUsecase, cookieName string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// RequireAuth verifies the access credential from the cookie or the
// Authorization header and attaches the session to the request context.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.authUsecase.Verify(ctx, token)
			if err != nil {
				m.logger.Debug("session verification failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set("session", session)
			c.Set("user_id", session.UserID.String())
			c.Set("user_email", session.Email)
			c.Set("user_role", string(session.Role))

			return next(c)
		}
	}
}

// RequirePermission gates a route on a capability. Runs after RequireAuth;
// a valid session lacking the capability gets a 403.
func (m *AuthMiddleware) RequirePermission(p domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get("session").(*domain.SessionContext)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !m.authUsecase.HasPermission(session, p) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permission")
			}
			return next(c)
		}
	}
}

// extractToken reads the access credential from the session cookie, then
// the Authorization header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
