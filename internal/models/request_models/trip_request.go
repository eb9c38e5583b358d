package request_models

import tm "tripwise/internal/models/trip_models"

type SynthesizeItineraryRequest struct {
	Destination string   `json:"destination"`
	Categories  []string `json:"categories"`
	Duration    int      `json:"duration"`
}

// CreateBookingRequest finalizes either a stored wizard draft (DraftID) or a
// draft sent inline.
type CreateBookingRequest struct {
	DraftID string        `json:"draftId"`
	Draft   *tm.TripDraft `json:"draft"`
}

type EditDayRequest struct {
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
}
