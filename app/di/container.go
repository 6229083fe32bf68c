package di

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"workbook-auth/app/config"
	"workbook-auth/app/driver/allowlist"
	"workbook-auth/app/driver/payments"
	"workbook-auth/app/driver/roster"
	"workbook-auth/app/driver/snapshot"
	"workbook-auth/app/driver/token"
	"workbook-auth/app/port"
	"workbook-auth/app/rest"
	"workbook-auth/app/rest/handlers"
	"workbook-auth/app/security"
	"workbook-auth/app/usecase"
	applog "workbook-auth/app/utils/logger"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	SnapshotStore *snapshot.Store
	RosterStore   *roster.Store
	TokenCodec    *token.JWT
	RedisClient   *redis.Client

	// Security
	Limiter  port.ActionLimiter
	Recorder port.EventRecorder
	Metrics  *security.Metrics
	Registry *prometheus.Registry

	// Usecases
	Resolver    port.MembershipResolver
	AuthUsecase port.AuthUsecase

	stopSweep func()
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Token codec
	codec, err := token.NewJWT(token.JWTConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.TokenIssuer,
		Audience:   cfg.TokenAudience,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	container.TokenCodec = codec

	// Identity sources, in cascade priority order
	resolverLog := applog.ResolverLogger(logger)
	container.SnapshotStore = snapshot.NewStore(cfg.SnapshotPath, cfg.SnapshotCheckInterval, resolverLog)
	container.RosterStore = roster.NewStore(resolverLog)

	sources := []port.IdentitySource{
		container.SnapshotStore,
		container.RosterStore,
	}

	if cfg.PaymentSourceEnabled() {
		paymentClient, err := payments.NewClient(payments.Config{
			BaseURL: cfg.PaymentAPIBaseURL,
			APIKey:  cfg.PaymentAPIKey,
			Timeout: cfg.PaymentTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize payment client: %w", err)
		}
		sources = append(sources, payments.NewAdapter(paymentClient, cfg.PaymentTimeout, resolverLog))
	} else {
		logger.Warn("payment-processor source disabled, cascade will skip it")
	}

	sources = append(sources, allowlist.NewSource())

	// Counter store: Redis when configured, process memory otherwise
	var store port.CounterStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		container.RedisClient = redis.NewClient(opts)
		store = security.NewRedisStore(container.RedisClient)
		logger.Info("rate-limit counters backed by Redis")
	} else {
		memStore := security.NewMemoryStore(security.SystemClock{})
		container.stopSweep = memStore.StartSweeping(cfg.LoginAttemptWindow)
		store = memStore
	}

	// Security components
	container.Registry = prometheus.NewRegistry()
	container.Registry.MustRegister(collectors.NewGoCollector())
	container.Metrics = security.NewMetrics(container.Registry)

	securityLog := applog.SecurityLogger(logger)
	container.Limiter = security.NewLimiter(store, security.SystemClock{}, security.LockoutPolicy{
		Threshold:         cfg.LockoutThreshold,
		ObservationWindow: cfg.LoginAttemptWindow * 4,
		Duration:          cfg.LockoutDuration,
	}, securityLog)

	container.Recorder = security.NewRecorder(
		cfg.EventBufferSize,
		security.DefaultSuspicionRule(),
		security.SystemClock{},
		container.Metrics,
		securityLog,
	)

	// Usecases
	container.Resolver = usecase.NewResolverUsecase(sources, cfg.ResolveTimeout, resolverLog)
	container.AuthUsecase = usecase.NewAuthUsecase(
		container.Resolver,
		codec,
		codec,
		container.Recorder,
		cfg.AccessCode,
		logger,
	)

	return container, nil
}

// CreateRouter builds the HTTP router from the container's dependencies.
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:        c.Logger,
		AuthUsecase:   c.AuthUsecase,
		Limiter:       c.Limiter,
		Recorder:      c.Recorder,
		RosterStore:   c.RosterStore,
		Metrics:       c.Metrics,
		Registry:      c.Registry,
		WebhookSecret: c.Config.WebhookSecret,
		LoginPolicy: handlers.LoginPolicy{
			Limit:        c.Config.LoginAttemptLimit,
			Window:       c.Config.LoginAttemptWindow,
			RefreshLimit: c.Config.LoginAttemptLimit * 6,
		},
		CookiePolicy: handlers.CookiePolicy{
			Path:   c.Config.CookiePath,
			Secure: isProduction(),
		},
	})
}

// Close releases container resources.
func (c *Container) Close() {
	if c.stopSweep != nil {
		c.stopSweep()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("failed to close Redis client", "error", err)
		}
	}
}

func isProduction() bool {
	env := strings.ToLower(os.Getenv("GO_ENV"))
	return env == "production" || env == "prod"
}
