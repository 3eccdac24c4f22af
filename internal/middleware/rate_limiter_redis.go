package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidresolve/backend/internal/logging"
)

const redisKeyPrefix = "vidresolve:ratelimit:"

// redisRateLimiter implements a fixed-window counter in Redis so multiple
// service instances share one budget per caller. The window key is created
// on first increment and expires with the window.
type redisRateLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	timeout  time.Duration
}

// NewRedisRateLimiter constructs a shared fixed-window limiter. Store errors
// fail open: an unreachable Redis must not take the API down with it.
func NewRedisRateLimiter(client *redis.Client, requests int, window time.Duration) RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &redisRateLimiter{
		client:   client,
		requests: requests,
		window:   window,
		timeout:  2 * time.Second,
	}
}

func (l *redisRateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	redisKey := redisKeyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		logging.FromContext(ctx).Warn("rate limit store unavailable, admitting request", "error", err)
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			logging.FromContext(ctx).Warn("rate limit window expiry not set", "key", key, "error", err)
		}
	}

	return count <= int64(l.requests)
}
