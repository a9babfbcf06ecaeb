package domain

import "time"

// Venue is the source entity offering menu items. Read-only for the feed
// engine; writes happen through the catalog services.
type Venue struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Cuisines  []string  `json:"cuisines"`
	Rating    float64   `json:"rating"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// VenueWithDistance annotates a venue with its distance from the request
// origin, in kilometers.
type VenueWithDistance struct {
	Venue
	DistanceKM float64 `json:"distance_km"`
}

// MenuItem is the orderable unit being filtered, scored and returned.
// Calories and Popularity are nullable columns.
type MenuItem struct {
	ID           int       `json:"id"`
	VenueID      int       `json:"venue_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Calories     *int      `json:"calories,omitempty"`
	DietaryTags  []string  `json:"dietary_tags"`
	AllergenTags []string  `json:"allergen_tags"`
	Available    bool      `json:"available"`
	ImageURL     string    `json:"image_url,omitempty"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	Popularity   *float64  `json:"popularity,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// CalorieRange is an inclusive calorie band.
type CalorieRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterCriteria holds the hard constraints of a feed request. All fields
// are optional; a zero value means "no filtering" for that dimension.
type FilterCriteria struct {
	// PriceRange holds bucket levels 1..4 as [min, max].
	PriceRange     []int         `json:"priceRange,omitempty"`
	DietPreference string        `json:"dietPreference,omitempty"`
	CalorieRange   *CalorieRange `json:"calorieRange,omitempty"`
	Allergens      []string      `json:"allergens,omitempty"`
	Cuisines       []string      `json:"cuisines,omitempty"`
}

// Location is the request origin.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FeedRequest is the external request payload of the feed endpoint.
type FeedRequest struct {
	Location Location       `json:"location"`
	RadiusKM float64        `json:"radius,omitempty"`
	Filters  FilterCriteria `json:"filters"`
	UserID   string         `json:"userId,omitempty"`
	Limit    int            `json:"limit,omitempty"`
}

// Interaction is one row of a user's swipe history, joined with the item's
// venue cuisines so a profile can be derived without a second lookup.
type Interaction struct {
	MenuItemID int      `json:"menu_item_id"`
	Liked      bool     `json:"liked"`
	Cuisines   []string `json:"cuisines"`
}

// PersonalizationProfile is derived per request from interaction history.
// Disliked ids are hard exclusions; liked cuisines only bias score.
// Never persisted.
type PersonalizationProfile struct {
	LikedCuisines    map[string]bool
	DislikedItemIDs  map[int]bool
	InteractionCount int
}

// EmptyProfile is the anonymous profile.
func EmptyProfile() PersonalizationProfile {
	return PersonalizationProfile{
		LikedCuisines:   map[string]bool{},
		DislikedItemIDs: map[int]bool{},
	}
}

// IsEmpty reports whether the profile carries any signal.
func (p PersonalizationProfile) IsEmpty() bool {
	return len(p.LikedCuisines) == 0 && len(p.DislikedItemIDs) == 0
}

// ScoredDish is a menu item shaped for the response, carrying its computed
// score and distance. Request-scoped only.
type ScoredDish struct {
	ID             int      `json:"id"`
	VenueID        int      `json:"venue_id"`
	VenueName      string   `json:"venue_name"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Calories       *int     `json:"calories,omitempty"`
	DietaryTags    []string `json:"dietary_tags"`
	AllergenTags   []string `json:"allergen_tags"`
	ImageURL       string   `json:"image_url,omitempty"`
	Score          float64  `json:"score"`
	DistanceKM     float64  `json:"distance_km"`
	IsPersonalized bool     `json:"is_personalized"`
}

// FeedMetadata describes how the page was produced. Degradation is visible
// here (personalized/cached flags), never through errors.
type FeedMetadata struct {
	TotalAvailable   int     `json:"totalAvailable"`
	Returned         int     `json:"returned"`
	Cached           bool    `json:"cached"`
	Personalized     bool    `json:"personalized"`
	UserInteractions int     `json:"userInteractions,omitempty"`
	ProcessingTimeMS float64 `json:"processingTime,omitempty"`
}

// FeedResult is the final ordered, capped page plus metadata. This is the
// value cached under the request fingerprint.
type FeedResult struct {
	Dishes   []ScoredDish `json:"dishes"`
	Metadata FeedMetadata `json:"metadata"`
}

// FeedEvent is published to Kafka after a page is served. Consumed by the
// external analytics pipeline; fire-and-forget on this side.
type FeedEvent struct {
	Type      string    `json:"type"`
	RequestID string    `json:"request_id"`
	UserID    string    `json:"user_id"`
	Returned  int       `json:"returned"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}
