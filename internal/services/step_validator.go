package services

import (
	"strings"

	"cloud.google.com/go/civil"
	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

// StepResult is the outcome of one step boundary check. Reasons is non-empty
// exactly when Passed is false.
type StepResult struct {
	Passed  bool     `json:"passed"`
	Reasons []string `json:"reasons,omitempty"`
}

func resultOf(reasons []string) StepResult {
	return StepResult{Passed: len(reasons) == 0, Reasons: reasons}
}

// ValidateDestinationStep checks destination, categories and the budget range.
func ValidateDestinationStep(d tm.TripDraft) StepResult {
	var reasons []string
	if strings.TrimSpace(d.Destination) == "" {
		reasons = append(reasons, "destination is required")
	}
	if len(tm.NormalizeCategories(d.Categories)) == 0 {
		reasons = append(reasons, "select at least one location type")
	}
	if d.Budget.Min < 0 || d.Budget.Max < 0 {
		reasons = append(reasons, "budget cannot be negative")
	} else if d.Budget.Min > d.Budget.Max {
		reasons = append(reasons, "budget minimum cannot exceed maximum")
	}
	return resultOf(reasons)
}

// ValidateTravelersStep checks travelers, organizer and dates against today.
func ValidateTravelersStep(d tm.TripDraft, today civil.Date) StepResult {
	var reasons []string

	if d.Travelers.HasNegative() {
		reasons = append(reasons, "traveler counts cannot be negative")
	} else if d.Travelers.Total() < 1 {
		reasons = append(reasons, "add at least one traveler")
	}

	if strings.TrimSpace(d.Organizer.Name) == "" {
		reasons = append(reasons, "organizer name is required")
	}
	if strings.TrimSpace(d.Organizer.Email) == "" {
		reasons = append(reasons, "organizer email is required")
	}
	if strings.TrimSpace(d.Organizer.Mobile1) == "" {
		reasons = append(reasons, "organizer mobile number is required")
	}

	switch {
	case tm.IsZeroDate(d.StartDate) || tm.IsZeroDate(d.EndDate):
		reasons = append(reasons, "select travel dates")
	default:
		if !d.StartDate.Before(d.EndDate) {
			reasons = append(reasons, "end date must be after start date")
		}
		if d.StartDate.Before(today) {
			reasons = append(reasons, "start date cannot be in the past")
		}
		if d.EndDate.Before(today) {
			reasons = append(reasons, "end date cannot be in the past")
		}
	}

	return resultOf(reasons)
}

// ValidateServicesStep always passes: every service toggle is optional.
func ValidateServicesStep(tm.TripDraft) StepResult {
	return resultOf(nil)
}

// ValidateReviewStep always passes: the review step is read-only.
func ValidateReviewStep(tm.TripDraft) StepResult {
	return resultOf(nil)
}

// ValidateStep dispatches to the predicate of the given boundary.
func ValidateStep(d tm.TripDraft, step tm.Step, today civil.Date) (StepResult, error) {
	switch step {
	case tm.StepDestination:
		return ValidateDestinationStep(d), nil
	case tm.StepTravelers:
		return ValidateTravelersStep(d, today), nil
	case tm.StepServices:
		return ValidateServicesStep(d), nil
	case tm.StepReview:
		return ValidateReviewStep(d), nil
	default:
		return StepResult{}, utils.ErrInvalidStep
	}
}

// ValidateForBooking requires the draft to pass every step boundary.
func ValidateForBooking(d tm.TripDraft, today civil.Date) error {
	var reasons []string
	for step := tm.StepDestination; step <= tm.StepReview; step++ {
		res, _ := ValidateStep(d, step, today)
		reasons = append(reasons, res.Reasons...)
	}
	if len(reasons) > 0 {
		return utils.NewValidationError(reasons...)
	}
	return nil
}

// Advance applies the input of one step to a copy of the draft and returns
// the copy only if it passes that step's boundary. The given draft is never
// modified.
func Advance(d tm.TripDraft, step tm.Step, in tm.StepInput, today civil.Date) (tm.TripDraft, error) {
	if !step.Valid() {
		return d, utils.ErrInvalidStep
	}

	next := d.Clone()
	staleItinerary := false

	switch step {
	case tm.StepDestination:
		if in.Destination != nil {
			dest := strings.TrimSpace(*in.Destination)
			staleItinerary = staleItinerary || dest != next.Destination
			next.Destination = dest
		}
		if in.Categories != nil {
			next.Categories = tm.NormalizeCategories(in.Categories)
			staleItinerary = true
		}
		if in.Budget != nil {
			next.Budget = *in.Budget
		}
	case tm.StepTravelers:
		if in.Travelers != nil {
			next.Travelers = *in.Travelers
		}
		if in.Organizer != nil {
			next.Organizer = *in.Organizer
		}
		if in.Assistant != nil {
			next.Assistant = *in.Assistant
		}
		if in.StartDate != nil {
			staleItinerary = staleItinerary || *in.StartDate != next.StartDate
			next.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			staleItinerary = staleItinerary || *in.EndDate != next.EndDate
			next.EndDate = *in.EndDate
		}
	case tm.StepServices:
		if in.Services != nil {
			next.Services = *in.Services
		}
	}

	if staleItinerary {
		next.Itinerary = nil
	}
	// any change invalidates the quoted price
	next.TotalCost = 0

	res, err := ValidateStep(next, step, today)
	if err != nil {
		return d, err
	}
	if !res.Passed {
		return d, utils.NewValidationError(res.Reasons...)
	}
	return next, nil
}
