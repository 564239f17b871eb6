package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xevscan/scan-api/internal/logger"
)

// RateLimitRepository counts request hits in Redis using fixed windows
type RateLimitRepository struct {
	client *redis.Client
}

// NewRateLimitRepository creates a new repository instance
func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Hit increments the counter for key and returns the hit count within the
// current window. The first hit of a window sets the key expiration.
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			logger.Log.Errorw("failed to set rate limit window", "key", key, "error", err)
		}
	}

	return count, nil
}
