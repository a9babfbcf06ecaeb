package service

import (
	"sort"

	"platefeed/internal/domain"
)

// Scoring is purely additive from a fixed base. Every bonus is a pure
// function of (item, distance, filters, profile) at computation time.
const (
	baseScore = 50.0

	maxQualityBonus    = 20.0
	maxPopularityBonus = 15.0
	maxProximityBonus  = 15.0
	proximityDecayRate = 2.0

	imageBonus               = 5.0
	descriptionBonus         = 3.0
	minDescriptionLength     = 40
	nutritionMatchBonus      = 5.0
	calorieMatchWindow       = 100
	personalizationBonus     = 20.0
	maxVenueRating           = 5.0
	assumedEngagementCeiling = 200.0
)

// Score computes the relevance score of one candidate.
func Score(c candidate, filters domain.FilterCriteria, profile domain.PersonalizationProfile) float64 {
	score := baseScore
	score += qualityBonus(c.Venue.Rating)
	score += popularityBonus(c.Item)
	score += proximityBonus(c.DistanceKM)
	score += presentationBonus(c.Item)
	score += nutritionBonus(c.Item, filters)
	score += profileBonus(c.Venue.Venue, profile)
	return score
}

func qualityBonus(rating float64) float64 {
	if rating <= 0 {
		return 0
	}
	bonus := rating / maxVenueRating * maxQualityBonus
	if bonus > maxQualityBonus {
		return maxQualityBonus
	}
	return bonus
}

// popularityBonus prefers a precomputed ratio, falls back to like/view
// ratio, then to raw likes against an assumed ceiling.
func popularityBonus(item domain.MenuItem) float64 {
	var ratio float64
	switch {
	case item.Popularity != nil:
		ratio = *item.Popularity
	case item.ViewCount > 0:
		ratio = float64(item.LikeCount) / float64(item.ViewCount)
	default:
		ratio = float64(item.LikeCount) / assumedEngagementCeiling
	}

	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * maxPopularityBonus
}

// proximityBonus decays linearly and contributes nothing beyond 7.5 km.
func proximityBonus(distanceKM float64) float64 {
	bonus := maxProximityBonus - distanceKM*proximityDecayRate
	if bonus < 0 {
		return 0
	}
	return bonus
}

func presentationBonus(item domain.MenuItem) float64 {
	bonus := 0.0
	if item.ImageURL != "" {
		bonus += imageBonus
	}
	if len(item.Description) >= minDescriptionLength {
		bonus += descriptionBonus
	}
	return bonus
}

// nutritionBonus rewards calories near the midpoint of an active calorie
// filter.
func nutritionBonus(item domain.MenuItem, filters domain.FilterCriteria) float64 {
	if filters.CalorieRange == nil || item.Calories == nil {
		return 0
	}
	midpoint := (filters.CalorieRange.Min + filters.CalorieRange.Max) / 2
	deviation := *item.Calories - midpoint
	if deviation < 0 {
		deviation = -deviation
	}
	if deviation <= calorieMatchWindow {
		return nutritionMatchBonus
	}
	return 0
}

func profileBonus(venue domain.Venue, profile domain.PersonalizationProfile) float64 {
	if profile.IsEmpty() {
		return 0
	}
	for _, cuisine := range venue.Cuisines {
		if profile.LikedCuisines[cuisine] {
			return personalizationBonus
		}
	}
	return 0
}

// ScoreAndSort scores every candidate and returns dishes in final order:
// score descending, then distance ascending, then item id ascending. The
// secondary keys make the ordering fully deterministic.
func ScoreAndSort(candidates []candidate, filters domain.FilterCriteria, profile domain.PersonalizationProfile) []domain.ScoredDish {
	personalized := !profile.IsEmpty()

	dishes := make([]domain.ScoredDish, 0, len(candidates))
	for _, c := range candidates {
		dishes = append(dishes, domain.ScoredDish{
			ID:             c.Item.ID,
			VenueID:        c.Venue.ID,
			VenueName:      c.Venue.Name,
			Name:           c.Item.Name,
			Description:    c.Item.Description,
			Price:          c.Item.Price,
			Calories:       c.Item.Calories,
			DietaryTags:    c.Item.DietaryTags,
			AllergenTags:   c.Item.AllergenTags,
			ImageURL:       c.Item.ImageURL,
			Score:          Score(c, filters, profile),
			DistanceKM:     c.DistanceKM,
			IsPersonalized: personalized && profileBonus(c.Venue.Venue, profile) > 0,
		})
	}

	sort.Slice(dishes, func(i, j int) bool {
		if dishes[i].Score != dishes[j].Score {
			return dishes[i].Score > dishes[j].Score
		}
		if dishes[i].DistanceKM != dishes[j].DistanceKM {
			return dishes[i].DistanceKM < dishes[j].DistanceKM
		}
		return dishes[i].ID < dishes[j].ID
	})
	return dishes
}
