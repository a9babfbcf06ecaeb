package service

import (
	"testing"

	"platefeed/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfile(t *testing.T) {
	interactions := []domain.Interaction{
		{MenuItemID: 1, Liked: true, Cuisines: []string{"mexican", "tacos"}},
		{MenuItemID: 2, Liked: true, Cuisines: []string{"mexican"}},
		{MenuItemID: 3, Liked: false, Cuisines: []string{"italian"}},
		{MenuItemID: 4, Liked: false, Cuisines: []string{"japanese"}},
	}

	profile := BuildProfile(interactions)

	assert.Equal(t, 4, profile.InteractionCount)
	assert.True(t, profile.LikedCuisines["mexican"])
	assert.True(t, profile.LikedCuisines["tacos"])
	// Disliked items never contribute cuisine affinity.
	assert.False(t, profile.LikedCuisines["italian"])
	assert.True(t, profile.DislikedItemIDs[3])
	assert.True(t, profile.DislikedItemIDs[4])
	assert.False(t, profile.DislikedItemIDs[1])
	assert.False(t, profile.IsEmpty())
}

func TestBuildProfile_Empty(t *testing.T) {
	profile := BuildProfile(nil)
	assert.True(t, profile.IsEmpty())
	assert.Zero(t, profile.InteractionCount)
}
