package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"platefeed/internal/domain"
	"platefeed/internal/geo"
)

// AnonymousBucket is the identity bucket for requests without a user id.
const AnonymousBucket = "anonymous"

// Fingerprint derives the cache key for a normalized request: identity
// bucket, origin snapped to the coarse grid, radius, and the canonicalized
// filters. Tag slices are lower-cased and sorted so equivalent requests
// share a key regardless of payload ordering.
func Fingerprint(req *domain.FeedRequest) string {
	bucket := req.UserID
	if bucket == "" {
		bucket = AnonymousBucket
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s|%.3f|%.3f|%.1f|%d",
		bucket,
		geo.RoundToGrid(req.Location.Lat),
		geo.RoundToGrid(req.Location.Lng),
		req.RadiusKM,
		req.Limit)

	if len(req.Filters.PriceRange) == 2 {
		fmt.Fprintf(&b, "|price=%d-%d", req.Filters.PriceRange[0], req.Filters.PriceRange[1])
	}
	if pref := strings.ToLower(req.Filters.DietPreference); pref != "" && pref != "all" {
		fmt.Fprintf(&b, "|diet=%s", pref)
	}
	if req.Filters.CalorieRange != nil {
		fmt.Fprintf(&b, "|cal=%d-%d", req.Filters.CalorieRange.Min, req.Filters.CalorieRange.Max)
	}
	if len(req.Filters.Allergens) > 0 {
		fmt.Fprintf(&b, "|allergens=%s", canonicalTags(req.Filters.Allergens))
	}
	if len(req.Filters.Cuisines) > 0 {
		fmt.Fprintf(&b, "|cuisines=%s", canonicalTags(req.Filters.Cuisines))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "feed:" + hex.EncodeToString(sum[:])
}

func canonicalTags(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(tag)))
	}
	sort.Strings(normalized)
	return strings.Join(normalized, ",")
}
