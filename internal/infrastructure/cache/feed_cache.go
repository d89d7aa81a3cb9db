package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FeedCache stores serialized popular feeds with a short TTL so the
// unauthenticated landing view does not hammer the remote store.
// Key format: feed:popular:<limit>
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

// Get attempts to load the cached value into dest.
// Returns (true, nil) when found and decoded, (false, nil) on a miss.
func (f *FeedCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	s, err := f.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("feed cache get: %w", err)
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, fmt.Errorf("feed cache decode: %w", err)
	}
	return true, nil
}

// Set marshals v and stores it under key with the configured TTL.
func (f *FeedCache) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	return f.client.Set(ctx, key, b, f.ttl).Err()
}
