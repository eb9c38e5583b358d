package services

import (
	"time"

	"cloud.google.com/go/civil"
	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

const minorPerMajor = 100

// Service rates in minor units.
const (
	MedicalRatePerTraveler    tm.Amount = 2000 * minorPerMajor
	TransportRatePerTraveler  tm.Amount = 5000 * minorPerMajor
	AccommodationRatePerNight tm.Amount = 3000 * minorPerMajor
)

// Early-bird discount: bookings starting more than 30 days out get 10% off.
const (
	EarlyBirdMinDaysAhead    = 30
	EarlyBirdDiscountPercent = 10
)

type CostServiceInterface interface {
	Price(draft tm.TripDraft, duration int) tm.PriceBreakdown
}

type CostService struct {
	clock utils.Clock
	loc   *time.Location
}

func NewCostService(clock utils.Clock, loc *time.Location) CostServiceInterface {
	return &CostService{clock: clock, loc: loc}
}

func (c *CostService) Price(draft tm.TripDraft, duration int) tm.PriceBreakdown {
	return PriceDraft(draft, duration, utils.Today(c.clock(), c.loc))
}

// PriceDraft computes the price of a draft lasting duration days as of today.
// Money is integer minor units; the only rounding is the discount, rounded
// half up to one minor unit.
func PriceDraft(draft tm.TripDraft, duration int, today civil.Date) tm.PriceBreakdown {
	travelers := tm.Amount(draft.Travelers.Total())
	if travelers < 0 {
		travelers = 0
	}
	if duration < 0 {
		duration = 0
	}

	// (min+max)/2 major units is exactly (min+max)*50 minor units.
	perTraveler := tm.Amount(draft.Budget.Min+draft.Budget.Max) * minorPerMajor / 2
	if perTraveler < 0 {
		perTraveler = 0
	}
	base := travelers * perTraveler

	var services tm.Amount
	if draft.Services.MedicalFacilities {
		services += MedicalRatePerTraveler * travelers
	}
	if draft.Services.Transportation {
		services += TransportRatePerTraveler * travelers
	}
	if draft.Services.Accommodation {
		services += AccommodationRatePerNight * travelers * tm.Amount(duration)
	}

	subtotal := base + services

	var discount tm.Amount
	if !tm.IsZeroDate(draft.StartDate) && draft.StartDate.DaysSince(today) > EarlyBirdMinDaysAhead {
		discount = percentHalfUp(subtotal, EarlyBirdDiscountPercent)
	}

	return tm.PriceBreakdown{
		Currency:     tm.Currency,
		Base:         base,
		ServicesCost: services,
		Subtotal:     subtotal,
		Discount:     discount,
		Total:        subtotal - discount,
	}
}

func percentHalfUp(amount tm.Amount, percent int64) tm.Amount {
	return (amount*tm.Amount(percent) + 50) / 100
}
