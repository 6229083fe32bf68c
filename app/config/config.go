package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the workbook auth service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Session tokens
	JWTSecret       string
	TokenIssuer     string
	TokenAudience   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CookiePath      string

	// Shared access code checked alongside membership resolution
	AccessCode string

	// Identity sources
	SnapshotPath          string
	SnapshotCheckInterval time.Duration
	PaymentAPIBaseURL     string
	PaymentAPIKey         string
	PaymentTimeout        time.Duration
	WebhookSecret         string
	ResolveTimeout        time.Duration

	// Rate limiting and lockout
	LoginAttemptLimit  int
	LoginAttemptWindow time.Duration
	LockoutThreshold   int
	LockoutDuration    time.Duration

	// Shared counter store; empty keeps counters in process memory
	RedisURL string

	// Security event log
	EventBufferSize int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Token configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	config.TokenIssuer = getEnvOrDefault("TOKEN_ISSUER", "workbook-auth")
	config.TokenAudience = getEnvOrDefault("TOKEN_AUDIENCE", "workbook")
	config.CookiePath = getEnvOrDefault("COOKIE_PATH", "/workbook")

	var err error
	if config.AccessTokenTTL, err = getDurationEnv("ACCESS_TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if config.RefreshTokenTTL, err = getDurationEnv("REFRESH_TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}

	// Access code
	config.AccessCode = os.Getenv("ACCESS_CODE")
	if config.AccessCode == "" {
		return nil, fmt.Errorf("ACCESS_CODE is required")
	}

	// Identity sources
	config.SnapshotPath = getEnvOrDefault("SNAPSHOT_PATH", "data/members.yaml")
	if config.SnapshotCheckInterval, err = getDurationEnv("SNAPSHOT_CHECK_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	config.PaymentAPIBaseURL = os.Getenv("PAYMENT_API_BASE_URL")
	config.PaymentAPIKey = os.Getenv("PAYMENT_API_KEY")
	if config.PaymentTimeout, err = getDurationEnv("PAYMENT_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	config.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	if config.ResolveTimeout, err = getDurationEnv("RESOLVE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	// Rate limiting
	if config.LoginAttemptLimit, err = getIntEnv("LOGIN_ATTEMPT_LIMIT", 5); err != nil {
		return nil, err
	}
	if config.LoginAttemptWindow, err = getDurationEnv("LOGIN_ATTEMPT_WINDOW", 15*time.Minute); err != nil {
		return nil, err
	}
	if config.LockoutThreshold, err = getIntEnv("LOCKOUT_THRESHOLD", 3); err != nil {
		return nil, err
	}
	if config.LockoutDuration, err = getDurationEnv("LOCKOUT_DURATION", 30*time.Minute); err != nil {
		return nil, err
	}

	config.RedisURL = os.Getenv("REDIS_URL")

	if config.EventBufferSize, err = getIntEnv("EVENT_BUFFER_SIZE", 1000); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters, got: %d", len(c.JWTSecret))
	}

	if len(c.AccessCode) < 8 {
		return fmt.Errorf("access code must be at least 8 characters")
	}

	if c.AccessTokenTTL < time.Minute {
		return fmt.Errorf("access token TTL must be at least 1 minute, got: %v", c.AccessTokenTTL)
	}
	if c.RefreshTokenTTL <= c.AccessTokenTTL {
		return fmt.Errorf("refresh token TTL must exceed access token TTL")
	}

	if c.LoginAttemptLimit < 1 {
		return fmt.Errorf("login attempt limit must be at least 1, got: %d", c.LoginAttemptLimit)
	}
	if c.LoginAttemptWindow < time.Second {
		return fmt.Errorf("login attempt window must be at least 1 second, got: %v", c.LoginAttemptWindow)
	}

	if c.EventBufferSize < 1 {
		return fmt.Errorf("event buffer size must be at least 1, got: %d", c.EventBufferSize)
	}

	return nil
}

// PaymentSourceEnabled reports whether the payment-processor source is
// configured. The cascade simply skips it otherwise.
func (c *Config) PaymentSourceEnabled() bool {
	return c.PaymentAPIBaseURL != "" && c.PaymentAPIKey != ""
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
