package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures the runtime configuration for the vidresolve service.
type Config struct {
	AppPort           int
	LogLevel          string
	StaticDir         string
	ProviderTimeout   time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RedisURL          string
	InfoCacheTTL      time.Duration
}

// Load reads configuration from environment variables, applying sensible defaults
// for local development while allowing overrides through environment variables.
func Load() (Config, error) {
	cfg := Config{
		AppPort:           getInt("VIDRESOLVE_PORT", 3000),
		LogLevel:          getString("VIDRESOLVE_LOG_LEVEL", "info"),
		StaticDir:         getString("VIDRESOLVE_STATIC_DIR", "public"),
		ProviderTimeout:   getDuration("VIDRESOLVE_PROVIDER_TIMEOUT", 10*time.Second),
		RateLimitRequests: getInt("VIDRESOLVE_RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getDuration("VIDRESOLVE_RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:          getString("VIDRESOLVE_REDIS_URL", ""),
		InfoCacheTTL:      getDuration("VIDRESOLVE_INFO_CACHE_TTL", 15*time.Minute),
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
