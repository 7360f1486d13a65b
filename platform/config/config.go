// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetPhoneDefaultRegion() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RedisConfig provides settings for the Redis connection.
type RedisConfig interface {
	GetRedisURL() string
	IsRedisEnabled() bool
}

// CartConfig provides settings for the cart module.
type CartConfig interface {
	GetCartKeyPrefix() string
	GetCartTTL() time.Duration
	GetCartSessionIdle() time.Duration
	GetCartCookieSecure() bool
}

// =============================================================================
// Config
// =============================================================================

// Config holds all application settings.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	MigrationsDisabled bool
	JWTAccessSecret    string
	AccessTokenTTL     time.Duration
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RedisURL           string
	CartKeyPrefix      string
	CartTTL            time.Duration
	CartSessionIdle    time.Duration
	CartCookieSecure   bool
	PhoneDefaultRegion string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// AuthServiceConfig implementation
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }
func (c *Config) GetPhoneDefaultRegion() string    { return c.PhoneDefaultRegion }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RedisConfig implementation
func (c *Config) GetRedisURL() string  { return c.RedisURL }
func (c *Config) IsRedisEnabled() bool { return c.RedisURL != "" }

// CartConfig implementation
func (c *Config) GetCartKeyPrefix() string          { return c.CartKeyPrefix }
func (c *Config) GetCartTTL() time.Duration         { return c.CartTTL }
func (c *Config) GetCartSessionIdle() time.Duration { return c.CartSessionIdle }
func (c *Config) GetCartCookieSecure() bool         { return c.CartCookieSecure }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	env := getEnv("APP_ENV", "development")
	cookieSecure := strings.EqualFold(getEnv("CART_COOKIE_SECURE", ""), "true")
	if getEnv("CART_COOKIE_SECURE", "") == "" {
		cookieSecure = strings.EqualFold(env, "production")
	}

	cfg := &Config{
		Env:                env,
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MigrationsDisabled: strings.EqualFold(getEnv("MIGRATIONS_DISABLED", "false"), "true"),
		JWTAccessSecret:    getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:     mustDuration(getEnv("JWT_ACCESS_TTL", "24h")),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CartKeyPrefix:      getEnv("CART_KEY_PREFIX", "givehope"),
		CartTTL:            mustDuration(getEnv("CART_TTL", "720h")),
		CartSessionIdle:    mustDuration(getEnv("CART_SESSION_IDLE", "30m")),
		CartCookieSecure:   cookieSecure,
		PhoneDefaultRegion: strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "RU")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TTL must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
