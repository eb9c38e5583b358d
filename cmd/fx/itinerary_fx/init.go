package itinerary_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"
	"tripwise/internal/config"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	provideCostService)

func provideItineraryService(cfg *config.Config) services.ItineraryServiceInterface {
	seed := cfg.ItinerarySeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return services.NewItineraryService(rand.New(rand.NewSource(seed)))
}

func provideCostService(clock utils.Clock, loc *time.Location) services.CostServiceInterface {
	return services.NewCostService(clock, loc)
}
