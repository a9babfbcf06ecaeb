package storage

import (
	"context"
	"testing"
	"time"

	"platefeed/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCache(t *testing.T) (*RedisFeedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisFeedCache(client, 300*time.Second), mr
}

func sampleResult() *domain.FeedResult {
	return &domain.FeedResult{
		Dishes: []domain.ScoredDish{
			{ID: 10, VenueID: 1, VenueName: "Taqueria Centro", Name: "Tacos al Pastor", Price: 12, Score: 88.5, DistanceKM: 1.2, DietaryTags: []string{}, AllergenTags: []string{}},
		},
		Metadata: domain.FeedMetadata{TotalAvailable: 1, Returned: 1},
	}
}

func TestFeedCache_RoundTrip(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "feed:abc", sampleResult())
	assert.NoError(t, err)

	got, err := cache.Get(ctx, "feed:abc")
	assert.NoError(t, err)
	assert.Equal(t, sampleResult(), got)

	// TTL is applied on store.
	assert.Greater(t, mr.TTL("feed:abc"), time.Duration(0))
}

func TestFeedCache_Miss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.Get(context.Background(), "feed:missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeedCache_Expiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, "feed:abc", sampleResult()))
	mr.FastForward(301 * time.Second)

	got, err := cache.Get(ctx, "feed:abc")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeedCache_CorruptPayload(t *testing.T) {
	cache, mr := setupCache(t)
	mr.Set("feed:abc", "not json")

	got, err := cache.Get(context.Background(), "feed:abc")
	assert.Error(t, err)
	assert.Nil(t, got)
}
