package service

import (
	"testing"

	"platefeed/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sortedDishes(venueIDs []int, scores []float64) []domain.ScoredDish {
	dishes := make([]domain.ScoredDish, len(venueIDs))
	for i := range venueIDs {
		dishes[i] = domain.ScoredDish{ID: i + 1, VenueID: venueIDs[i], Score: scores[i]}
	}
	return dishes
}

func TestDiversify_CapPerVenue(t *testing.T) {
	dishes := sortedDishes(
		[]int{1, 1, 1, 1, 2, 2, 3},
		[]float64{90, 88, 86, 84, 82, 80, 78},
	)

	out := Diversify(dishes, 3)

	perVenue := map[int]int{}
	for _, dish := range out {
		perVenue[dish.VenueID]++
	}
	for venueID, count := range perVenue {
		assert.LessOrEqualf(t, count, 3, "venue %d over cap", venueID)
	}
	assert.Len(t, out, 6)
}

// A skipped item is dropped permanently: with K=3, venue X holding global
// ranks 1, 2, 3 and 7 keeps its first three, venue Y's rank-4 item is
// admitted, and X's rank-7 item stays out even though a page slot remains.
func TestDiversify_NoBackfillStarvation(t *testing.T) {
	x, y := 1, 2
	dishes := []domain.ScoredDish{
		{ID: 1, VenueID: x, Score: 95}, // rank 1
		{ID: 2, VenueID: x, Score: 94}, // rank 2
		{ID: 3, VenueID: x, Score: 93}, // rank 3
		{ID: 4, VenueID: y, Score: 92}, // rank 4
		{ID: 5, VenueID: 3, Score: 91},
		{ID: 6, VenueID: 4, Score: 90},
		{ID: 7, VenueID: x, Score: 89}, // rank 7, permanently dropped
	}

	out := Diversify(dishes, 3)

	ids := []int{}
	for _, dish := range out {
		ids = append(ids, dish.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids)
	assert.NotContains(t, ids, 7)
}

// Relative score-order among retained items is preserved.
func TestDiversify_PreservesOrder(t *testing.T) {
	dishes := sortedDishes(
		[]int{1, 2, 1, 2, 1, 2, 1, 2},
		[]float64{80, 79, 78, 77, 76, 75, 74, 73},
	)

	out := Diversify(dishes, 2)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	assert.Len(t, out, 4)
}

func TestDiversify_NonPositiveCapUsesDefault(t *testing.T) {
	dishes := sortedDishes(
		[]int{1, 1, 1, 1, 1},
		[]float64{90, 89, 88, 87, 86},
	)

	out := Diversify(dishes, 0)
	assert.Len(t, out, DefaultDiversityCap)
}
