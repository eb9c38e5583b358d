package response_models

import tm "tripwise/internal/models/trip_models"

type ItineraryResponse struct {
	Duration int          `json:"duration"`
	Days     []tm.DayPlan `json:"days"`
}

type PriceQuoteResponse struct {
	Duration     int               `json:"duration"`
	Pricing      tm.PriceBreakdown `json:"pricing"`
	DisplayTotal string            `json:"displayTotal"`
}

type ReconcileResponse struct {
	Added int `json:"added"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Timestamp string `json:"timestamp"`
}
