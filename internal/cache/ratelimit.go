package cache

import (
	"context"
	"time"
)

// LoginLimiter counts login attempts per key in a fixed window. With a
// nil client every attempt is allowed, which keeps single-node dev
// setups working without Redis.
type LoginLimiter struct {
	client *Client
	window time.Duration
	max    int
}

// NewLoginLimiter builds a limiter allowing max attempts per window.
func NewLoginLimiter(client *Client, window time.Duration, max int) *LoginLimiter {
	return &LoginLimiter{client: client, window: window, max: max}
}

// Allow records one attempt under key and reports whether it is within
// the limit. The counter expires with the window, so a blocked key
// unblocks on its own.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.client == nil || l.max <= 0 {
		return true, nil
	}
	full := l.client.key("login", key)
	n, err := l.client.rdb.Incr(ctx, full).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.rdb.Expire(ctx, full, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.max), nil
}
