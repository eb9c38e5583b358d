package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	tm "tripwise/internal/models/trip_models"
)

type BookingRepositoryInterface interface {
	SaveBooking(ctx context.Context, booking tm.Booking) (string, error)
	IndexBooking(ctx context.Context, ownerID, key string) error
	GetBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error)
	ListBookings(ctx context.Context, ownerID string) ([]tm.Booking, error)
	ScanBookingKeys(ctx context.Context, prefix string) ([]string, error)
	GetBookingsByKeys(ctx context.Context, keys []string) ([]tm.Booking, error)
	IndexedKeys(ctx context.Context, ownerID string) ([]string, error)
}

func NewBookingRepository(store TripStore, logger *zap.Logger) BookingRepositoryInterface {
	return &BookingRepository{store: store, logger: logger}
}

type BookingRepository struct {
	store  TripStore
	logger *zap.Logger
}

// SaveBooking writes the booking record under its trip key and returns the key.
func (r *BookingRepository) SaveBooking(ctx context.Context, booking tm.Booking) (string, error) {
	key := tm.TripKey(booking.OwnerID, booking.ID)
	raw, err := json.Marshal(booking)
	if err != nil {
		return "", fmt.Errorf("encode booking %s: %w", booking.ID, err)
	}
	if err := r.store.Put(ctx, key, raw); err != nil {
		return "", err
	}
	return key, nil
}

func (r *BookingRepository) IndexBooking(ctx context.Context, ownerID, key string) error {
	return r.store.AppendToIndex(ctx, ownerID, key)
}

// GetBooking returns nil, nil when the owner has no booking with that id.
func (r *BookingRepository) GetBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error) {
	raw, err := r.store.Get(ctx, tm.TripKey(ownerID, bookingID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var b tm.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", bookingID, err)
	}
	return &b, nil
}

// ListBookings resolves the owner's index in index order. Keys whose record
// is missing or unreadable are skipped.
func (r *BookingRepository) ListBookings(ctx context.Context, ownerID string) ([]tm.Booking, error) {
	keys, err := r.store.Index(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return r.GetBookingsByKeys(ctx, keys)
}

func (r *BookingRepository) IndexedKeys(ctx context.Context, ownerID string) ([]string, error) {
	return r.store.Index(ctx, ownerID)
}

func (r *BookingRepository) ScanBookingKeys(ctx context.Context, prefix string) ([]string, error) {
	return r.store.Keys(ctx, prefix)
}

func (r *BookingRepository) GetBookingsByKeys(ctx context.Context, keys []string) ([]tm.Booking, error) {
	bookings := make([]tm.Booking, 0, len(keys))
	if len(keys) == 0 {
		return bookings, nil
	}

	values, err := r.store.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	for i, raw := range values {
		if raw == nil {
			r.logger.Warn("indexed booking has no record", zap.String("key", keys[i]))
			continue
		}
		var b tm.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			r.logger.Warn("skipping unreadable booking", zap.String("key", keys[i]), zap.Error(err))
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
