package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores JSON values with a fixed TTL. Every failure is logged
// and reported as a miss so callers fall back to the store.
type RedisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// Open parses a redis:// URL and pings the server.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration, prefix string, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "booking"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{rdb: rdb, ttl: ttl, prefix: prefix, logger: logger}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + ":" + k
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("cache get failed", "key", key, "err", err)
		return false
	}

	if err := json.Unmarshal(b, dst); err != nil {
		c.logger.Warn("cache entry undecodable", "key", key, "err", err)
		return false
	}
	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "err", err)
		return
	}

	if err := c.rdb.Set(ctx, c.key(key), b, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "err", err)
	}
}
