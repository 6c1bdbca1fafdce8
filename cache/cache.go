// Package cache is a small JSON read-through cache on Redis for the
// read-heavy public endpoints (product catalog, site settings). A nil
// *Cache is valid and disables caching, so handlers call it unconditionally.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KeyProducts = "site:products"
	KeySettings = "site:settings"

	defaultTTL = 5 * time.Minute
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// New returns nil when no Redis URI is configured.
func New(redisURI string, log *slog.Logger) *Cache {
	if redisURI == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURI)
	if err != nil {
		log.Error("invalid redis uri, cache disabled", "error", err)
		return nil
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: defaultTTL,
		log: log,
	}
}

// GetJSON reports whether the key was present and decoded into dest. Cache
// errors count as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Warn("cache delete failed", "key", key, "error", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
