// Package cache is an optional Redis read-through cache for GET payloads.
// A nil *Cache is a valid no-op, so callers never branch on whether caching
// is configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache keys used by the API layer.
const (
	KeyAnalytics          = "cleansuite:analytics"
	KeyAvailabilityPrefix = "cleansuite:availability:"
)

type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// New wraps a Redis client. Returns nil when the client is absent or the
// TTL is not positive.
func New(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *Cache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &Cache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("component", "cache").Logger(),
	}
}

// Get decodes the cached value for key into out, reporting whether a fresh
// entry was found. Cache errors count as misses.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("cache entry decode failed")
		return false
	}
	return true
}

// Set stores the value under key with the configured TTL. Failures are
// logged and swallowed; the cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate removes the given keys plus every availability entry; booking
// writes change both the analytics figures and the slot map.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	if len(keys) > 0 {
		_ = c.rdb.Del(ctx, keys...).Err()
	}

	iter := c.rdb.Scan(ctx, 0, KeyAvailabilityPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.rdb.Del(ctx, iter.Val()).Err()
	}
}
