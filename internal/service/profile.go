package service

import "platefeed/internal/domain"

// BuildProfile derives a request-scoped personalization profile from swipe
// history. Liked items contribute their venue cuisines as soft affinities;
// disliked items become hard exclusions.
func BuildProfile(interactions []domain.Interaction) domain.PersonalizationProfile {
	profile := domain.EmptyProfile()
	profile.InteractionCount = len(interactions)

	for _, interaction := range interactions {
		if interaction.Liked {
			for _, cuisine := range interaction.Cuisines {
				profile.LikedCuisines[cuisine] = true
			}
			continue
		}
		profile.DislikedItemIDs[interaction.MenuItemID] = true
	}
	return profile
}
