package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"workbook-auth/app/driver/roster"
	"workbook-auth/app/port"
	"workbook-auth/app/rest/handlers"
	custommw "workbook-auth/app/rest/middleware"
	"workbook-auth/app/security"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	Logger        *slog.Logger
	AuthUsecase   port.AuthUsecase
	Limiter       port.ActionLimiter
	Recorder      port.EventRecorder
	RosterStore   *roster.Store
	Metrics       *security.Metrics
	Registry      *prometheus.Registry
	WebhookSecret string
	LoginPolicy   handlers.LoginPolicy
	CookiePolicy  handlers.CookiePolicy
	TrafficRate   rate.Limit
	TrafficBurst  int
	EnableDebug   bool
}

// NewRouter creates and configures the Echo router.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.EnableDebug

	authHandler := handlers.NewAuthHandler(
		config.AuthUsecase,
		config.Limiter,
		config.Metrics,
		config.LoginPolicy,
		config.CookiePolicy,
		config.Logger,
	)
	webhookHandler := handlers.NewWebhookHandler(config.RosterStore, config.WebhookSecret, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Recorder, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, handlers.AccessCookieName, config.Logger)

	trafficRate := config.TrafficRate
	if trafficRate <= 0 {
		trafficRate = rate.Limit(20)
	}
	trafficBurst := config.TrafficBurst
	if trafficBurst <= 0 {
		trafficBurst = 40
	}
	shaper := custommw.NewTrafficShaper(trafficRate, trafficBurst)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(shaper.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogError:   true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				config.Logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				config.Logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/health/auth", healthHandler.AuthHealth)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/logout", authHandler.Logout, authMiddleware.RequireAuth())

	// Community platform webhook (signature-verified, no session)
	v1.POST("/webhooks/membership", webhookHandler.HandleMembershipEvent)

	// Metrics endpoint
	if config.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{})))
	}

	return e
}
