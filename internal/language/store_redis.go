// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/constants"
)

// RedisCache implements [Cache] as one JSON value with a TTL.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed Cache.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

/*
Get returns the cached language list.

Returns:
  - []hierarchy.Language: the cached list
  - error: ErrCacheMiss when the key is absent, or connectivity errors
*/
func (cache *RedisCache) Get(ctx context.Context) ([]hierarchy.Language, error) {
	raw, err := cache.client.Get(ctx, constants.RedisKeyLanguages).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_language_get_failed: %w", err)
	}

	var languages []hierarchy.Language
	if err := json.Unmarshal(raw, &languages); err != nil {
		return nil, fmt.Errorf("redis_language_decode_failed: %w", err)
	}
	return languages, nil
}

// Set stores the list under the cache TTL.
func (cache *RedisCache) Set(ctx context.Context, languages []hierarchy.Language) error {
	raw, err := json.Marshal(languages)
	if err != nil {
		return fmt.Errorf("redis_language_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, constants.RedisKeyLanguages, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_language_set_failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached list.
func (cache *RedisCache) Invalidate(ctx context.Context) error {
	if err := cache.client.Del(ctx, constants.RedisKeyLanguages).Err(); err != nil {
		return fmt.Errorf("redis_language_delete_failed: %w", err)
	}
	return nil
}
