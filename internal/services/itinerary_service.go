package services

import (
	"fmt"
	"math/rand"
	"sync"

	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

const (
	minInteriorActivities = 4
	interiorExtraChoices  = 2 // 4 or 5 activities
)

var (
	fullDayMeals = []string{"Breakfast", "Lunch", "Dinner"}
	lastDayMeals = []string{"Breakfast"}
)

type ItineraryServiceInterface interface {
	Synthesize(destination string, categories []string, duration int) ([]tm.DayPlan, error)
}

// ItineraryService builds day plans from the primary category's template.
// Only the interior activity count is random; rng is guarded because
// *rand.Rand is not safe for concurrent use.
type ItineraryService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewItineraryService(rng *rand.Rand) ItineraryServiceInterface {
	return &ItineraryService{rng: rng}
}

// Synthesize returns exactly duration day plans numbered 1..duration. The first
// category selected is the primary template for the whole trip; templates are
// never blended. The destination does not change the plan text.
func (s *ItineraryService) Synthesize(destination string, categories []string, duration int) ([]tm.DayPlan, error) {
	if duration < 1 {
		return nil, utils.ErrInvalidDuration
	}

	primary := defaultTemplateKey
	if normalized := tm.NormalizeCategories(categories); len(normalized) > 0 {
		primary = normalized[0]
	}
	tpl := TemplateFor(primary)

	days := make([]tm.DayPlan, 0, duration)
	for i := 1; i <= duration; i++ {
		day := tm.DayPlan{
			Day:           i,
			Accommodation: tpl.Accommodation,
			Meals:         append([]string(nil), fullDayMeals...),
		}

		switch {
		case i == 1:
			day.Title = "Arrival Day"
			day.Activities = append([]string(nil), tpl.Arrival...)
		case i == duration:
			day.Title = "Departure Day"
			day.Activities = append([]string(nil), tpl.Departure...)
		default:
			day.Title = fmt.Sprintf("Day %d - Exploration", i)
			day.Activities = append([]string(nil), tpl.Pool[:s.interiorCount(len(tpl.Pool))]...)
		}

		if i == duration {
			day.Accommodation = departureAccommodation
			day.Meals = append([]string(nil), lastDayMeals...)
		}

		days = append(days, day)
	}

	return days, nil
}

func (s *ItineraryService) interiorCount(poolSize int) int {
	s.mu.Lock()
	n := minInteriorActivities + s.rng.Intn(interiorExtraChoices)
	s.mu.Unlock()
	if n > poolSize {
		n = poolSize
	}
	return n
}
