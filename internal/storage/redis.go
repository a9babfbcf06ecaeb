package storage

import (
	"context"
	"encoding/json"
	"time"

	"platefeed/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisFeedCache stores computed feed results under their fingerprint.
// Advisory only: every caller must tolerate misses and errors.
type RedisFeedCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{Client: client, TTL: ttl}
}

// Get returns the cached result for key, or (nil, nil) on a miss.
func (c *RedisFeedCache) Get(ctx context.Context, key string) (*domain.FeedResult, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result domain.FeedResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores the result under key for the configured TTL. Last writer wins;
// every writer computes the same value within the TTL window.
func (c *RedisFeedCache) Set(ctx context.Context, key string, result *domain.FeedResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
