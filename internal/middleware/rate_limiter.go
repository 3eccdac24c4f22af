package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter decides whether a caller identity may perform another request.
// Implementations hold their own state; callers inject an instance rather
// than sharing a package-level limiter.
type RateLimiter interface {
	Allow(key string) bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryRateLimiter tracks request budgets per key (the caller's network
// address) in process memory. Suitable for single-instance deployments only;
// see the Redis-backed limiter for shared state.
type memoryRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryRateLimiter constructs a per-key limiter admitting up to `requests`
// events per `window`. A full window's budget is available as burst, so a
// quiet caller can spend its whole allowance at once. Idle entries are
// dropped after three windows.
func NewMemoryRateLimiter(requests int, window time.Duration) RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Second
	}

	return &memoryRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		ttl:      3 * window,
		now:      time.Now,
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	now := l.now()

	l.mu.Lock()
	v := l.getVisitorLocked(key, now)
	l.gcLocked(now)
	l.mu.Unlock()

	return v.limiter.Allow()
}

func (l *memoryRateLimiter) getVisitorLocked(key string, now time.Time) *visitor {
	if v, ok := l.visitors[key]; ok {
		v.lastSeen = now
		return v
	}

	v := &visitor{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.visitors[key] = v
	return v
}

func (l *memoryRateLimiter) gcLocked(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, key)
		}
	}
}
