package providers

import (
	"context"
	"sync"
	"time"

	"github.com/vidresolve/backend/internal/models"
	"github.com/vidresolve/backend/internal/platform"
)

// Service resolves canonical results for an already-classified URL.
type Service interface {
	Info(ctx context.Context, p platform.Platform, params Params) (models.VideoInfo, error)
	Download(ctx context.Context, p platform.Platform, params Params) (models.DownloadResult, error)
}

type cacheEntry struct {
	info    models.VideoInfo
	expires time.Time
}

// CachingService wraps another Service with a TTL-based in-memory cache for
// info lookups. Download resolutions are deterministic or quality-dependent
// and pass straight through.
type CachingService struct {
	base Service
	ttl  time.Duration

	mu    sync.RWMutex
	items map[string]cacheEntry
}

// NewCachingService returns a Service that caches info results for the
// provided TTL.
func NewCachingService(base Service, ttl time.Duration) *CachingService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachingService{
		base:  base,
		ttl:   ttl,
		items: make(map[string]cacheEntry),
	}
}

// Info returns a cached result when available, otherwise it delegates to the
// underlying service and stores the outcome.
func (c *CachingService) Info(ctx context.Context, p platform.Platform, params Params) (models.VideoInfo, error) {
	if c == nil || c.base == nil {
		return models.VideoInfo{}, ErrResolverUnavailable
	}

	now := time.Now()

	c.mu.RLock()
	entry, ok := c.items[params.URL]
	c.mu.RUnlock()
	if ok && now.Before(entry.expires) {
		return entry.info, nil
	}

	info, err := c.base.Info(ctx, p, params)
	if err != nil {
		return models.VideoInfo{}, err
	}

	c.mu.Lock()
	c.items[params.URL] = cacheEntry{info: info, expires: now.Add(c.ttl)}
	c.mu.Unlock()

	return info, nil
}

// Download delegates directly to the underlying service.
func (c *CachingService) Download(ctx context.Context, p platform.Platform, params Params) (models.DownloadResult, error) {
	if c == nil || c.base == nil {
		return models.DownloadResult{}, ErrResolverUnavailable
	}
	return c.base.Download(ctx, p, params)
}
