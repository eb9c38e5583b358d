package trip_models

import (
	"time"

	"cloud.google.com/go/civil"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

const Currency = "INR"

// PriceBreakdown amounts are minor units.
type PriceBreakdown struct {
	Currency     string `json:"currency"`
	Base         Amount `json:"base"`
	ServicesCost Amount `json:"servicesCost"`
	Subtotal     Amount `json:"subtotal"`
	Discount     Amount `json:"discount"`
	Total        Amount `json:"total"`
}

// Booking is the persisted form of a finalized TripDraft.
type Booking struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	TripDraft
	Pricing   PriceBreakdown `json:"pricing"`
	Status    BookingStatus  `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EffectiveStatus reports confirmed bookings whose end date has passed as
// completed, before the expiry sweep has persisted the transition.
func (b Booking) EffectiveStatus(today civil.Date) BookingStatus {
	if b.Status == StatusConfirmed && b.EndDate.Before(today) {
		return StatusCompleted
	}
	return b.Status
}

// UserRecord is the owner record holding the ordered booking key index.
type UserRecord struct {
	ID    string   `json:"id"`
	Trips []string `json:"trips"`
}

const (
	userKeyPrefix = "user:"
	tripKeyPrefix = "trip:"
	PackagesKey   = "travel_packages"
)

func UserKey(ownerID string) string {
	return userKeyPrefix + ownerID
}

func TripKey(ownerID, bookingID string) string {
	return TripKeyPrefix(ownerID) + bookingID
}

// TripKeyPrefix is the prefix shared by every booking key of one owner.
func TripKeyPrefix(ownerID string) string {
	return tripKeyPrefix + ownerID + ":"
}

// AllTripsPrefix matches every booking key in the store.
func AllTripsPrefix() string {
	return tripKeyPrefix
}

// TravelPackage is an entry of the curated package catalog.
type TravelPackage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       Amount   `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
}
