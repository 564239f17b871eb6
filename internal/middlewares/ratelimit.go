package middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/xevscan/scan-api/internal/logger"
)

// RateCounter counts hits for a key within a fixed window.
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware enforces a fixed-window request limit per client IP and
// route. When the counter backend is unavailable the request is let through.
func RateLimitMiddleware(counter RateCounter, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, clientIP(r))

			count, err := counter.Hit(r.Context(), key, window)
			if err != nil {
				logger.Log.Errorw("rate limit counter unavailable", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller address, preferring X-Forwarded-For.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
