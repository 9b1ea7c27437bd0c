package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// responseCache is a best-effort Redis cache in front of the slow external
// lookups (geodata, news). A nil client disables it; cache failures are
// logged and treated as misses.
type responseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newResponseCache(client *redis.Client, ttl time.Duration) *responseCache {
	return &responseCache{client: client, ttl: ttl}
}

func (c *responseCache) get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.WarnContext(ctx, "cache entry corrupt, ignoring", "key", key, "error", err)
		return false
	}
	return true
}

func (c *responseCache) set(ctx context.Context, key string, v any) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
