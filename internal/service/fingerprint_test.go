package service

import (
	"testing"

	"platefeed/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fingerprintRequest() *domain.FeedRequest {
	return &domain.FeedRequest{
		Location: domain.Location{Lat: 19.4326, Lng: -99.1332},
		RadiusKM: 10,
		Limit:    20,
		UserID:   "user-1",
		Filters: domain.FilterCriteria{
			PriceRange:     []int{1, 3},
			DietPreference: "vegetarian",
			Allergens:      []string{"peanuts", "shellfish"},
			Cuisines:       []string{"mexican", "japanese"},
		},
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_TagOrderIrrelevant(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	b.Filters.Allergens = []string{"Shellfish", "peanuts"}
	b.Filters.Cuisines = []string{"japanese", "MEXICAN"}
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_CoarseGrid(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	// ~30 m apart, same grid cell.
	b.Location.Lat = a.Location.Lat + 0.0002
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	c := fingerprintRequest()
	c.Location.Lat = a.Location.Lat + 0.01
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}

func TestFingerprint_IdentityBucket(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	b.UserID = "user-2"
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))

	anon := fingerprintRequest()
	anon.UserID = ""
	assert.NotEqual(t, Fingerprint(a), Fingerprint(anon))
}

func TestFingerprint_FilterSensitivity(t *testing.T) {
	a := fingerprintRequest()

	b := fingerprintRequest()
	b.Filters.DietPreference = "vegan"
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))

	c := fingerprintRequest()
	c.Filters.CalorieRange = &domain.CalorieRange{Min: 300, Max: 700}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}
