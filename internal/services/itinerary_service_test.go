package services

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripwise/pkg/utils"
)

func newTestItinerary(seed int64) ItineraryServiceInterface {
	return NewItineraryService(rand.New(rand.NewSource(seed)))
}

func TestSynthesizeLengthAndNumbering(t *testing.T) {
	svc := newTestItinerary(1)
	for duration := 1; duration <= 15; duration++ {
		days, err := svc.Synthesize("Goa", []string{"beaches"}, duration)
		require.NoError(t, err)
		require.Len(t, days, duration)
		for i, d := range days {
			assert.Equal(t, i+1, d.Day)
		}
	}
}

func TestSynthesizeBeachesThreeDays(t *testing.T) {
	days, err := newTestItinerary(42).Synthesize("Goa", []string{"beaches"}, 3)
	require.NoError(t, err)
	require.Len(t, days, 3)

	tpl := TemplateFor("beaches")

	assert.Equal(t, "Arrival Day", days[0].Title)
	assert.Equal(t, tpl.Arrival, days[0].Activities)
	assert.Equal(t, tpl.Accommodation, days[0].Accommodation)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, days[0].Meals)

	assert.Equal(t, "Day 2 - Exploration", days[1].Title)
	n := len(days[1].Activities)
	assert.True(t, n == 4 || n == 5, "got %d interior activities", n)
	assert.Equal(t, tpl.Pool[:n], days[1].Activities)
	assert.Equal(t, tpl.Accommodation, days[1].Accommodation)

	assert.Equal(t, "Departure Day", days[2].Title)
	assert.Equal(t, tpl.Departure, days[2].Activities)
	assert.Equal(t, "Departure", days[2].Accommodation)
	assert.Equal(t, []string{"Breakfast"}, days[2].Meals)
}

func TestSynthesizeOneDayTrip(t *testing.T) {
	days, err := newTestItinerary(1).Synthesize("Goa", []string{"beaches"}, 1)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, TemplateFor("beaches").Arrival, days[0].Activities)
	assert.Equal(t, []string{"Breakfast"}, days[0].Meals)
	assert.Equal(t, "Departure", days[0].Accommodation)
}

func TestSynthesizeUsesFirstCategoryOnly(t *testing.T) {
	days, err := newTestItinerary(1).Synthesize("Manali", []string{"Mountains", "beaches"}, 2)
	require.NoError(t, err)
	assert.Equal(t, TemplateFor("mountains").Arrival, days[0].Activities)
	assert.Equal(t, TemplateFor("mountains").Departure, days[1].Activities)
}

func TestSynthesizeFallsBackToNature(t *testing.T) {
	svc := newTestItinerary(1)
	for _, cats := range [][]string{{"luxury"}, {"unknown"}, nil} {
		days, err := svc.Synthesize("", cats, 3)
		require.NoError(t, err)
		assert.Equal(t, TemplateFor("nature").Arrival, days[0].Activities)
		assert.Equal(t, "Day 2 - Exploration", days[1].Title)
	}
}

func TestSynthesizeRejectsShortDuration(t *testing.T) {
	svc := newTestItinerary(1)
	for _, d := range []int{0, -3} {
		_, err := svc.Synthesize("Goa", []string{"beaches"}, d)
		assert.ErrorIs(t, err, utils.ErrInvalidDuration)
	}
}

func TestSynthesizeIsDeterministicForASeed(t *testing.T) {
	a, err := newTestItinerary(7).Synthesize("Goa", []string{"wellness"}, 8)
	require.NoError(t, err)
	b, err := newTestItinerary(7).Synthesize("Goa", []string{"wellness"}, 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSynthesizeIsSafeForConcurrentUse(t *testing.T) {
	svc := newTestItinerary(3)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			days, err := svc.Synthesize("Goa", []string{"desert"}, 6)
			assert.NoError(t, err)
			assert.Len(t, days, 6)
		}()
	}
	wg.Wait()
}

func TestEveryTemplateHasEnoughPool(t *testing.T) {
	for key, tpl := range activityTemplates {
		assert.GreaterOrEqual(t, len(tpl.Pool), minInteriorActivities+interiorExtraChoices-1, key)
		assert.NotEmpty(t, tpl.Arrival, key)
		assert.NotEmpty(t, tpl.Departure, key)
		assert.NotEmpty(t, tpl.Accommodation, key)
	}
}
