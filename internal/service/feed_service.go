package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"platefeed/internal/domain"
	"platefeed/internal/geo"

	"github.com/google/uuid"
)

const (
	DefaultRadiusKM = 10.0
	MaxRadiusKM     = 100.0
	DefaultLimit    = 20
	MaxLimit        = 100

	// DefaultRequestTimeout bounds one whole pipeline run; in-flight
	// sub-calls are aborted when it expires.
	DefaultRequestTimeout = 5 * time.Second

	// sideEffectTimeout bounds the fire-and-forget cache store and Kafka
	// publish, which outlive the request context.
	sideEffectTimeout = 2 * time.Second
)

// FeedService sequences the feed pipeline: validate, cache lookup,
// concurrent candidate/profile loads, filter, score, diversify, truncate,
// async store and publish.
type FeedService struct {
	repository   CandidateRepository
	interactions InteractionRepository
	cache        FeedCache
	publisher    FeedPublisher
	diversityCap int
	timeout      time.Duration
}

func NewFeedService(repository CandidateRepository, interactions InteractionRepository, cache FeedCache, publisher FeedPublisher) *FeedService {
	return &FeedService{
		repository:   repository,
		interactions: interactions,
		cache:        cache,
		publisher:    publisher,
		diversityCap: DefaultDiversityCap,
		timeout:      DefaultRequestTimeout,
	}
}

// WithDiversityCap overrides the per-venue cap K.
func (s *FeedService) WithDiversityCap(maxPerVenue int) *FeedService {
	if maxPerVenue > 0 {
		s.diversityCap = maxPerVenue
	}
	return s
}

// WithTimeout overrides the per-request deadline.
func (s *FeedService) WithTimeout(timeout time.Duration) *FeedService {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// BuildFeed turns a validated request into a ranked, diversified, capped
// page of dishes. Candidate-load failures are fatal; profile and cache
// failures degrade the request and are only visible in the metadata flags.
func (s *FeedService) BuildFeed(ctx context.Context, req *domain.FeedRequest) (*domain.FeedResult, error) {
	start := time.Now()

	if err := normalizeRequest(req); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := Fingerprint(req)
	if cached := s.cacheLookup(ctx, key); cached != nil {
		cached.Metadata.Cached = true
		cached.Metadata.ProcessingTimeMS = millisecondsSince(start)
		s.publishAsync(requestID, req.UserID, cached)
		return cached, nil
	}

	// Candidate and profile loads have no mutual dependency; everything
	// after waits on both.
	var (
		wg        sync.WaitGroup
		venues    []domain.VenueWithDistance
		venuesErr error
		profile   = domain.EmptyProfile()
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		venues, venuesErr = s.repository.VenuesNear(ctx, req.Location.Lat, req.Location.Lng, req.RadiusKM)
	}()

	if req.UserID != "" && req.UserID != AnonymousBucket {
		wg.Add(1)
		go func() {
			defer wg.Done()
			interactions, err := s.interactions.UserInteractions(ctx, req.UserID)
			if err != nil {
				log.Printf("[feed-svc] profile load failed for user %s, continuing anonymous: %v", req.UserID, err)
				return
			}
			profile = BuildProfile(interactions)
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if venuesErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCandidateLoad, venuesErr)
	}

	personalized := !profile.IsEmpty()

	if len(venues) == 0 {
		result := &domain.FeedResult{
			Dishes: []domain.ScoredDish{},
			Metadata: domain.FeedMetadata{
				Personalized:     personalized,
				UserInteractions: profile.InteractionCount,
			},
		}
		s.storeAsync(key, result)
		s.publishAsync(requestID, req.UserID, result)
		result.Metadata.ProcessingTimeMS = millisecondsSince(start)
		return result, nil
	}

	venueByID := make(map[int]domain.VenueWithDistance, len(venues))
	venueIDs := make([]int, 0, len(venues))
	for _, venue := range venues {
		venueByID[venue.ID] = venue
		venueIDs = append(venueIDs, venue.ID)
	}

	items, err := s.repository.AvailableItemsByVenues(ctx, venueIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCandidateLoad, err)
	}

	candidates := make([]candidate, 0, len(items))
	for _, item := range items {
		if !item.Available {
			continue
		}
		venue, ok := venueByID[item.VenueID]
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{Item: item, Venue: venue, DistanceKM: venue.DistanceKM})
	}

	filtered := ApplyFilters(candidates, req.Filters, profile)
	dishes := ScoreAndSort(filtered, req.Filters, profile)
	dishes = Diversify(dishes, s.diversityCap)
	if len(dishes) > req.Limit {
		dishes = dishes[:req.Limit]
	}

	result := &domain.FeedResult{
		Dishes: dishes,
		Metadata: domain.FeedMetadata{
			TotalAvailable:   len(filtered),
			Returned:         len(dishes),
			Personalized:     personalized,
			UserInteractions: profile.InteractionCount,
		},
	}

	s.storeAsync(key, result)
	s.publishAsync(requestID, req.UserID, result)

	result.Metadata.ProcessingTimeMS = millisecondsSince(start)
	return result, nil
}

func (s *FeedService) cacheLookup(ctx context.Context, key string) *domain.FeedResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[feed-svc] cache read failed, bypassing: %v", err)
		return nil
	}
	return cached
}

// storeAsync writes the result to the cache without blocking the response.
// The stored copy carries no timing so a recompute and a hit compare equal
// apart from the cached flag.
func (s *FeedService) storeAsync(key string, result *domain.FeedResult) {
	if s.cache == nil {
		return
	}
	copied := *result
	copied.Metadata.Cached = false
	copied.Metadata.ProcessingTimeMS = 0

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()
		if err := s.cache.Set(ctx, key, &copied); err != nil {
			log.Printf("[feed-svc] cache store failed: %v", err)
		}
	}()
}

func (s *FeedService) publishAsync(requestID, userID string, result *domain.FeedResult) {
	if s.publisher == nil {
		return
	}
	event := domain.FeedEvent{
		Type:      "feed_served",
		RequestID: requestID,
		UserID:    userID,
		Returned:  len(result.Dishes),
		Cached:    result.Metadata.Cached,
		Timestamp: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()
		if err := s.publisher.PublishFeedEvent(ctx, event); err != nil {
			log.Printf("[feed-svc] feed event publish failed: %v", err)
		}
	}()
}

// normalizeRequest applies defaults and rejects malformed payloads before
// any work is done.
func normalizeRequest(req *domain.FeedRequest) error {
	if !geo.ValidCoordinates(req.Location.Lat, req.Location.Lng) {
		return domain.NewValidationError("location", "lat must be in [-90,90] and lng in [-180,180]")
	}

	if req.RadiusKM == 0 {
		req.RadiusKM = DefaultRadiusKM
	}
	if req.RadiusKM < 0 || req.RadiusKM > MaxRadiusKM {
		return domain.NewValidationError("radius", "must be between 0 and %.0f km", MaxRadiusKM)
	}

	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit < 0 || req.Limit > MaxLimit {
		return domain.NewValidationError("limit", "must be between 1 and %d", MaxLimit)
	}

	if pr := req.Filters.PriceRange; len(pr) != 0 {
		if len(pr) != 2 {
			return domain.NewValidationError("filters.priceRange", "must hold exactly [min, max]")
		}
		if pr[0] < 1 || pr[0] > 4 || pr[1] < 1 || pr[1] > 4 || pr[0] > pr[1] {
			return domain.NewValidationError("filters.priceRange", "bucket levels must be 1..4 with min <= max")
		}
	}

	switch strings.ToLower(req.Filters.DietPreference) {
	case "", "all", "vegetarian", "vegan":
	default:
		return domain.NewValidationError("filters.dietPreference", "must be one of all, vegetarian, vegan")
	}

	if cr := req.Filters.CalorieRange; cr != nil {
		if cr.Min < 0 || cr.Max < cr.Min {
			return domain.NewValidationError("filters.calorieRange", "must satisfy 0 <= min <= max")
		}
	}

	if req.UserID == AnonymousBucket {
		req.UserID = ""
	}
	return nil
}

func millisecondsSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
