package app

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/vidresolve/backend/internal/config"
	"github.com/vidresolve/backend/internal/handlers"
	"github.com/vidresolve/backend/internal/middleware"
	"github.com/vidresolve/backend/internal/providers"
)

// buildDependencies wires together concrete implementations used by the HTTP
// handlers: the chain resolver behind an info cache, and the rate limiter
// (Redis-backed when a shared store is configured, otherwise in-process).
func buildDependencies(cfg config.Config) (handlers.Dependencies, error) {
	resolver := providers.NewResolver(&http.Client{}, providers.DefaultChains(cfg.ProviderTimeout))
	service := providers.NewCachingService(resolver, cfg.InfoCacheTTL)

	limiter, err := buildRateLimiter(cfg)
	if err != nil {
		return handlers.Dependencies{}, err
	}

	return handlers.Dependencies{
		Resolver:  service,
		Limiter:   limiter,
		StaticDir: cfg.StaticDir,
	}, nil
}

func buildRateLimiter(cfg config.Config) (middleware.RateLimiter, error) {
	if cfg.RedisURL == "" {
		return middleware.NewMemoryRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	return middleware.NewRedisRateLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow), nil
}
