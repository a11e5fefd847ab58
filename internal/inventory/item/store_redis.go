// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/constants"
)

// # Summary Cache

// RedisSummaryCache implements SummaryCache using Redis with per-key TTLs.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed SummaryCache.
func NewSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

/*
Get retrieves a cached status summary for a user.

Description: Returns apperr.NotFound on a cache miss or an expired key.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *StatusSummary: Cached aggregate
  - error: apperr.NotFound or connectivity errors
*/
func (cache *RedisSummaryCache) Get(context context.Context, userID int64) (*StatusSummary, error) {

	// Use constants for key prefix
	key := fmt.Sprintf("%s%d", constants.RedisPrefixItemSummary, userID)

	// Get the cached payload from Redis
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Summary cache entry")
		}
		return nil, fmt.Errorf("redis_summary_cache_get_failed: %w", err)
	}

	summary := &StatusSummary{}
	if err := json.Unmarshal(payload, summary); err != nil {
		return nil, fmt.Errorf("redis_summary_cache_decode_failed: %w", err)
	}

	return summary, nil
}

/*
Set stores a status summary for a user with the given TTL.

Parameters:
  - context: context.Context
  - userID: int64
  - summary: *StatusSummary
  - ttl: time.Duration

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisSummaryCache) Set(context context.Context, userID int64, summary *StatusSummary, ttl time.Duration) error {

	// Use constants for key prefix
	key := fmt.Sprintf("%s%d", constants.RedisPrefixItemSummary, userID)

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("redis_summary_cache_encode_failed: %w", err)
	}

	// Set the payload with TTL
	if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_summary_cache_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate drops the cached summary for a user.

Description: Called after any item mutation so the next summary read
reflects the new state.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - error: Deletion failures
*/
func (cache *RedisSummaryCache) Invalidate(context context.Context, userID int64) error {

	// Use constants for key prefix
	key := fmt.Sprintf("%s%d", constants.RedisPrefixItemSummary, userID)

	// Delete the cached summary from Redis
	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_summary_cache_delete_failed: %w", err)
	}

	return nil
}
