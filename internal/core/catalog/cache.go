// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/platform/constants"
)

// listCacheKey derives the cache key for one query against one generation.
// The canonical query encoding already omits defaults, so equivalent filter
// states hash identically.
func listCacheKey(generation uint64, cfg filter.Config) string {
	sum := sha256.Sum256([]byte(filter.Values(cfg).Encode()))
	return fmt.Sprintf("%s%d:%s", constants.RedisPrefixListCache, generation, hex.EncodeToString(sum[:12]))
}

// RedisListCache implements [ListCache] on Redis with a short TTL.
//
// Entries are never invalidated explicitly: the generation inside the key
// retires them on snapshot swap and the TTL reclaims the memory. Every Redis
// failure degrades to a recompute; the cache can never fail a request.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisListCache constructs the cache. A non-positive ttl falls back to
// the default.
func NewRedisListCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisListCache {
	if ttl <= 0 {
		ttl = constants.ListCacheDefaultTTL
	}
	return &RedisListCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "list_cache")),
	}
}

// Get returns the cached ordered id list for key, reporting a miss on any
// error.
func (cache *RedisListCache) Get(ctx context.Context, key string) ([]string, bool) {
	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Debug("list cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(payload, &ids); err != nil {
		cache.logger.Debug("list cache entry corrupt, ignoring", slog.String("key", key))
		return nil, false
	}
	return ids, true
}

// Set stores the ordered id list under key. Failures are logged and dropped.
func (cache *RedisListCache) Set(ctx context.Context, key string, ids []string) {
	payload, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := cache.client.Set(ctx, key, payload, cache.ttl).Err(); err != nil {
		cache.logger.Debug("list cache write failed", slog.String("error", err.Error()))
	}
}
