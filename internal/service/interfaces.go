package service

import (
	"context"

	"platefeed/internal/domain"
)

type FeedServiceInterface interface {
	BuildFeed(ctx context.Context, req *domain.FeedRequest) (*domain.FeedResult, error)
}

// CandidateRepository is the primary data store read path. Failures here
// are fatal for the request.
type CandidateRepository interface {
	VenuesNear(ctx context.Context, lat, lng, radiusKM float64) ([]domain.VenueWithDistance, error)
	AvailableItemsByVenues(ctx context.Context, venueIDs []int) ([]domain.MenuItem, error)
}

// InteractionRepository reads swipe history. Failures here degrade the
// request to anonymous.
type InteractionRepository interface {
	UserInteractions(ctx context.Context, userID string) ([]domain.Interaction, error)
}

// FeedCache is the advisory result cache. Get returns (nil, nil) on a miss.
type FeedCache interface {
	Get(ctx context.Context, key string) (*domain.FeedResult, error)
	Set(ctx context.Context, key string, result *domain.FeedResult) error
}

// FeedPublisher emits fire-and-forget feed events.
type FeedPublisher interface {
	PublishFeedEvent(ctx context.Context, event domain.FeedEvent) error
}

var _ FeedServiceInterface = (*FeedService)(nil)
