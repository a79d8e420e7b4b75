package cache

import (
	"context"
	"fmt"
	"time"
)

const rateLimitPrefix = "rate_limit:"

// Allow counts one hit for key in the current window and reports whether the
// count is still within limit. The window starts with the first hit.
func (c *Cache) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	const op = "cache.Allow"
	k := rateLimitPrefix + key

	count, err := c.Db.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if count == 1 {
		if err := c.Db.Expire(ctx, k, window).Err(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}
	return count <= int64(limit), nil
}
