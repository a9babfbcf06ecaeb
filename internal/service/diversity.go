package service

import "platefeed/internal/domain"

// DefaultDiversityCap is the per-venue item cap K in one result page.
const DefaultDiversityCap = 3

// Diversify walks the score-sorted list once, admitting at most cap items
// per venue. A skipped item is dropped permanently and is never backfilled
// by later items from the same venue, so a venue with many high-scoring
// items can leave page slots intentionally unfilled. Relative order among
// admitted items is preserved.
func Diversify(dishes []domain.ScoredDish, maxPerVenue int) []domain.ScoredDish {
	if maxPerVenue <= 0 {
		maxPerVenue = DefaultDiversityCap
	}

	perVenue := map[int]int{}
	out := make([]domain.ScoredDish, 0, len(dishes))
	for _, dish := range dishes {
		if perVenue[dish.VenueID] >= maxPerVenue {
			continue
		}
		perVenue[dish.VenueID]++
		out = append(out, dish)
	}
	return out
}
