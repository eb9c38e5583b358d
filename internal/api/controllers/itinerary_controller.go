package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	costService      services.CostServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	costService services.CostServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		costService:      costService,
	}
}

// SynthesizeItinerary godoc
// @Summary Synthesize a day-by-day itinerary
// @Description Build one day plan per trip day from the first selected location type
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SynthesizeItineraryRequest true "Destination, categories and duration"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/synthesize [post]
func (ic *ItineraryController) SynthesizeItinerary(c *gin.Context) {
	var req request_models.SynthesizeItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	days, err := ic.itineraryService.Synthesize(req.Destination, req.Categories, req.Duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{Duration: req.Duration, Days: days}, "Itinerary synthesized successfully")
}

// QuotePrice godoc
// @Summary Price a trip draft
// @Description Compute base, services, early-bird discount and total in minor units
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body trip_models.TripDraft true "Trip draft"
// @Success 200 {object} response_models.PriceQuoteResponse
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/quote [post]
func (ic *ItineraryController) QuotePrice(c *gin.Context) {
	var draft tm.TripDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	duration, ok := draft.Duration()
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidDuration)
		return
	}

	pricing := ic.costService.Price(draft, duration)
	utils.RespondSuccess(c, response_models.PriceQuoteResponse{
		Duration:     duration,
		Pricing:      pricing,
		DisplayTotal: pricing.Currency + " " + pricing.Total.String(),
	}, "Price quoted successfully")
}
