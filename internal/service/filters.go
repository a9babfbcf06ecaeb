package service

import (
	"strings"

	"platefeed/internal/domain"
)

// Price bucket levels 1..4 map to a monetary band. An approximation of
// typical menu pricing, not a currency conversion.
const (
	priceBandFloorPerLevel   = 5.0
	priceBandCeilingPerLevel = 15.0
)

// candidate pairs a menu item with its venue and the venue's distance from
// the origin for the duration of one request.
type candidate struct {
	Item       domain.MenuItem
	Venue      domain.VenueWithDistance
	DistanceKM float64
}

// ApplyFilters runs the hard constraints as a conjunction and returns the
// surviving candidates. The predicates are independent, so application
// order never changes the result set.
func ApplyFilters(candidates []candidate, filters domain.FilterCriteria, profile domain.PersonalizationProfile) []candidate {
	survivors := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if !passesPrice(c.Item, filters) {
			continue
		}
		if !passesDiet(c.Item, filters) {
			continue
		}
		if !passesAllergens(c.Item, filters) {
			continue
		}
		if !passesCalories(c.Item, filters) {
			continue
		}
		if !passesCuisine(c.Venue.Venue, filters) {
			continue
		}
		if profile.DislikedItemIDs[c.Item.ID] {
			// Expressed distaste is a hard exclusion, not a score penalty.
			continue
		}
		survivors = append(survivors, c)
	}
	return survivors
}

func passesPrice(item domain.MenuItem, filters domain.FilterCriteria) bool {
	if len(filters.PriceRange) != 2 {
		return true
	}
	minPrice := float64(filters.PriceRange[0]) * priceBandFloorPerLevel
	maxPrice := float64(filters.PriceRange[1]) * priceBandCeilingPerLevel
	return item.Price >= minPrice && item.Price <= maxPrice
}

// passesDiet: vegan requires a "vegan" tag; vegetarian accepts "vegetarian"
// or "vegan". Untagged items fail any active diet filter — absence of a tag
// is not proof of compliance.
func passesDiet(item domain.MenuItem, filters domain.FilterCriteria) bool {
	pref := strings.ToLower(filters.DietPreference)
	if pref == "" || pref == "all" {
		return true
	}

	tags := map[string]bool{}
	for _, tag := range item.DietaryTags {
		tags[strings.ToLower(tag)] = true
	}

	switch pref {
	case "vegan":
		return tags["vegan"]
	case "vegetarian":
		return tags["vegetarian"] || tags["vegan"]
	}
	return true
}

// passesAllergens is a deny-list: any overlap between the item's allergen
// tags and the exclusion set drops the item. Only the explicit per-item
// tags are consulted.
func passesAllergens(item domain.MenuItem, filters domain.FilterCriteria) bool {
	if len(filters.Allergens) == 0 {
		return true
	}

	excluded := map[string]bool{}
	for _, allergen := range filters.Allergens {
		excluded[strings.ToLower(allergen)] = true
	}
	for _, tag := range item.AllergenTags {
		if excluded[strings.ToLower(tag)] {
			return false
		}
	}
	return true
}

// passesCalories: inclusive range; items without calorie data fail while
// the filter is active.
func passesCalories(item domain.MenuItem, filters domain.FilterCriteria) bool {
	if filters.CalorieRange == nil {
		return true
	}
	if item.Calories == nil {
		return false
	}
	return *item.Calories >= filters.CalorieRange.Min && *item.Calories <= filters.CalorieRange.Max
}

// passesCuisine is an allow-list with OR semantics over the venue's
// cuisines. An empty list means no cuisine filtering.
func passesCuisine(venue domain.Venue, filters domain.FilterCriteria) bool {
	if len(filters.Cuisines) == 0 {
		return true
	}

	wanted := map[string]bool{}
	for _, cuisine := range filters.Cuisines {
		wanted[strings.ToLower(cuisine)] = true
	}
	for _, cuisine := range venue.Cuisines {
		if wanted[strings.ToLower(cuisine)] {
			return true
		}
	}
	return false
}
