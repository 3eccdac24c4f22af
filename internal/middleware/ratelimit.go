package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/vidresolve/backend/internal/logging"
)

// RateLimit gates the wrapped handler behind the provided limiter, keyed by
// the caller's network address. Intended for the API prefix only; static
// content is served unmetered. A nil limiter admits everything.
func RateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow(ClientIP(r)) {
				logging.FromContext(r.Context()).Warn("request rejected by rate limiter",
					"client", ClientIP(r),
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Too many requests. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the caller identity used for rate limiting, preferring
// the first X-Forwarded-For hop over the socket address.
func ClientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
