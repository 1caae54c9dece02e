package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"adrewards/internal/config/configs"
)

// Client wraps a redis connection with a key prefix. A nil *Client is
// valid and disables every operation, so callers never need to branch on
// whether Redis is configured.
type Client struct {
	rdb    *redis.Client
	prefix string
}

// New connects to Redis according to cfg. It returns (nil, nil) when
// Redis is disabled. Connectivity is verified with a short ping.
func New(ctx context.Context, cfg configs.Redis) (*Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "adrewards"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return &Client{rdb: rdb, prefix: prefix}, nil
}

// Close releases the underlying connection. Safe on a nil client.
func (c *Client) Close() {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Close()
}

func (c *Client) key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}
