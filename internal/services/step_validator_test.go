package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

func TestValidateDestinationStep(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *tm.TripDraft)
		passed  bool
		reasons int
	}{
		{"valid", func(d *tm.TripDraft) {}, true, 0},
		{"blank destination", func(d *tm.TripDraft) { d.Destination = "   " }, false, 1},
		{"no categories", func(d *tm.TripDraft) { d.Categories = nil }, false, 1},
		{"only blank categories", func(d *tm.TripDraft) { d.Categories = []string{" ", ""} }, false, 1},
		{"inverted budget", func(d *tm.TripDraft) { d.Budget = tm.Budget{Min: 5, Max: 1} }, false, 1},
		{"negative budget", func(d *tm.TripDraft) { d.Budget = tm.Budget{Min: -1, Max: 1} }, false, 1},
		{"everything missing", func(d *tm.TripDraft) {
			d.Destination = ""
			d.Categories = nil
		}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			res := ValidateDestinationStep(d)
			assert.Equal(t, tt.passed, res.Passed)
			assert.Len(t, res.Reasons, tt.reasons)
		})
	}
}

func TestValidateTravelersStep(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *tm.TripDraft)
		passed bool
	}{
		{"valid", func(d *tm.TripDraft) {}, true},
		{"no travelers", func(d *tm.TripDraft) { d.Travelers = tm.Travelers{} }, false},
		{"only a newborn counts", func(d *tm.TripDraft) { d.Travelers = tm.Travelers{Newborns: 1} }, true},
		{"negative count", func(d *tm.TripDraft) { d.Travelers = tm.Travelers{Adults: 2, Children: -1} }, false},
		{"missing organizer name", func(d *tm.TripDraft) { d.Organizer.Name = "" }, false},
		{"missing organizer email", func(d *tm.TripDraft) { d.Organizer.Email = " " }, false},
		{"missing organizer mobile", func(d *tm.TripDraft) { d.Organizer.Mobile1 = "" }, false},
		{"mobile2 is optional", func(d *tm.TripDraft) { d.Organizer.Mobile2 = "" }, true},
		{"missing dates", func(d *tm.TripDraft) { d.StartDate = tm.TripDraft{}.StartDate }, false},
		{"same day", func(d *tm.TripDraft) { d.EndDate = d.StartDate }, false},
		{"inverted dates", func(d *tm.TripDraft) { d.StartDate, d.EndDate = d.EndDate, d.StartDate }, false},
		{"start today", func(d *tm.TripDraft) { d.StartDate = testToday }, true},
		{"start in the past", func(d *tm.TripDraft) { d.StartDate = date(2026, time.February, 27) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			res := ValidateTravelersStep(d, testToday)
			assert.Equal(t, tt.passed, res.Passed, res.Reasons)
			assert.Equal(t, !tt.passed, len(res.Reasons) > 0)
		})
	}
}

func TestServicesAndReviewStepsAlwaysPass(t *testing.T) {
	var empty tm.TripDraft
	assert.True(t, ValidateServicesStep(empty).Passed)
	assert.True(t, ValidateReviewStep(empty).Passed)
}

func TestValidateStepRejectsUnknownStep(t *testing.T) {
	_, err := ValidateStep(validDraft(), tm.Step(5), testToday)
	assert.ErrorIs(t, err, utils.ErrInvalidStep)

	_, err = ValidateStep(validDraft(), tm.Step(0), testToday)
	assert.ErrorIs(t, err, utils.ErrInvalidStep)
}

func TestValidateForBookingCollectsReasons(t *testing.T) {
	require.NoError(t, ValidateForBooking(validDraft(), testToday))

	d := validDraft()
	d.Destination = ""
	d.Travelers = tm.Travelers{}

	err := ValidateForBooking(d, testToday)
	require.ErrorIs(t, err, utils.ErrValidationFailed)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Reasons, "destination is required")
	assert.Contains(t, vErr.Reasons, "add at least one traveler")
}

func TestAdvanceKeepsDraftOnFailure(t *testing.T) {
	d := validDraft()
	in := tm.StepInput{Destination: strPtr("  ")}

	next, err := Advance(d, tm.StepDestination, in, testToday)
	require.ErrorIs(t, err, utils.ErrValidationFailed)
	assert.Equal(t, d, next)
	assert.Equal(t, "Goa", d.Destination)
}

func TestAdvanceClearsStaleItinerary(t *testing.T) {
	d := validDraft()
	d.Itinerary = []tm.DayPlan{{Day: 1}, {Day: 2}, {Day: 3}}
	d.TotalCost = 100

	// a services change keeps the itinerary but drops the quote
	next, err := Advance(d, tm.StepServices, tm.StepInput{Services: &tm.Services{Transportation: true}}, testToday)
	require.NoError(t, err)
	assert.Len(t, next.Itinerary, 3)
	assert.Zero(t, next.TotalCost)
	assert.True(t, next.Services.Transportation)

	// a destination change drops the itinerary
	next, err = Advance(d, tm.StepDestination, tm.StepInput{Destination: strPtr("Kerala")}, testToday)
	require.NoError(t, err)
	assert.Empty(t, next.Itinerary)
	assert.Equal(t, "Kerala", next.Destination)

	// the original is untouched
	assert.Len(t, d.Itinerary, 3)
	assert.Equal(t, tm.Amount(100), d.TotalCost)
}

func TestAdvanceNormalizesCategories(t *testing.T) {
	next, err := Advance(validDraft(), tm.StepDestination, tm.StepInput{
		Categories: []string{" Mountains", "beaches", "mountains"},
	}, testToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"mountains", "beaches"}, next.Categories)
}
