package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"go.uber.org/zap"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

// Trip list tabs.
const (
	TabAll       = ""
	TabUpcoming  = "upcoming"
	TabOngoing   = "ongoing"
	TabCompleted = "completed"
	TabCancelled = "cancelled"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, ownerID string, draft tm.TripDraft) (*tm.Booking, error)
	ListBookings(ctx context.Context, ownerID string, tab string) ([]tm.Booking, error)
	GetBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error)
	CancelBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error)
	Reconcile(ctx context.Context, ownerID string) (int, error)
	CompleteExpired(ctx context.Context) (int, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepositoryInterface
	itinerary   ItineraryServiceInterface
	notifier    BookingNotifier
	clock       utils.Clock
	loc         *time.Location
	logger      *zap.Logger
	newID       func() string
}

func NewBookingService(
	bookingRepo repositories.BookingRepositoryInterface,
	itinerary ItineraryServiceInterface,
	notifier BookingNotifier,
	clock utils.Clock,
	loc *time.Location,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		itinerary:   itinerary,
		notifier:    notifier,
		clock:       clock,
		loc:         loc,
		logger:      logger,
		newID:       func() string { return uuid.NewString() },
	}
}

func (s *BookingService) today() civil.Date {
	return utils.Today(s.clock(), s.loc)
}

// CreateBooking finalizes a draft: validate, synthesize a missing itinerary,
// price, write the record, then append its key to the owner's index. Storage
// calls are made once each; a failed index append leaves the record in place
// and is reported as an OrphanBookingError.
func (s *BookingService) CreateBooking(ctx context.Context, ownerID string, draft tm.TripDraft) (*tm.Booking, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, utils.ErrUnauthorized
	}

	today := s.today()
	draft = draft.Clone()
	draft.Destination = strings.TrimSpace(draft.Destination)
	draft.Categories = tm.NormalizeCategories(draft.Categories)

	if err := ValidateForBooking(draft, today); err != nil {
		return nil, err
	}

	duration, ok := draft.Duration()
	if !ok {
		return nil, utils.ErrInvalidDuration
	}

	if len(draft.Itinerary) == 0 {
		days, err := s.itinerary.Synthesize(draft.Destination, draft.Categories, duration)
		if err != nil {
			return nil, err
		}
		draft.Itinerary = days
	} else if len(draft.Itinerary) != duration {
		return nil, utils.NewValidationError("itinerary does not match the trip dates")
	}

	pricing := PriceDraft(draft, duration, today)
	draft.TotalCost = pricing.Total

	booking := tm.Booking{
		ID:        s.newID(),
		OwnerID:   ownerID,
		TripDraft: draft,
		Pricing:   pricing,
		Status:    tm.StatusConfirmed,
		CreatedAt: s.clock().UTC(),
	}

	key, err := s.bookingRepo.SaveBooking(ctx, booking)
	if err != nil {
		return nil, utils.StorageError("save booking", err)
	}

	if err := s.bookingRepo.IndexBooking(ctx, ownerID, key); err != nil {
		s.logger.Error("booking stored but not indexed",
			zap.String("owner_id", ownerID),
			zap.String("booking_id", booking.ID),
			zap.Error(err))
		return nil, &utils.OrphanBookingError{BookingID: booking.ID, Key: key, Err: err}
	}

	if err := s.notifier.BookingConfirmed(ctx, booking); err != nil {
		s.logger.Warn("booking confirmation not sent",
			zap.String("booking_id", booking.ID),
			zap.Error(err))
	}

	s.logger.Info("booking created",
		zap.String("owner_id", ownerID),
		zap.String("booking_id", booking.ID),
		zap.Int64("total", int64(pricing.Total)))
	return &booking, nil
}

// ListBookings returns the owner's bookings in index order, filtered by tab.
// Statuses are reported as of today, so a confirmed trip that has ended is
// listed as completed even before the expiry sweep runs.
func (s *BookingService) ListBookings(ctx context.Context, ownerID string, tab string) ([]tm.Booking, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, utils.ErrUnauthorized
	}
	tab = strings.ToLower(strings.TrimSpace(tab))
	if !validTab(tab) {
		return nil, utils.ErrInvalidTab
	}

	bookings, err := s.bookingRepo.ListBookings(ctx, ownerID)
	if err != nil {
		return nil, utils.StorageError("list bookings", err)
	}

	today := s.today()
	out := make([]tm.Booking, 0, len(bookings))
	for _, b := range bookings {
		b.Status = b.EffectiveStatus(today)
		if inTab(b, tab, today) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingService) GetBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, utils.ErrUnauthorized
	}
	if !isBookingID(bookingID) {
		return nil, utils.ErrBookingNotFound
	}
	b, err := s.bookingRepo.GetBooking(ctx, ownerID, bookingID)
	if err != nil {
		return nil, utils.StorageError("get booking", err)
	}
	if b == nil || b.OwnerID != ownerID {
		return nil, utils.ErrBookingNotFound
	}
	b.Status = b.EffectiveStatus(s.today())
	return b, nil
}

// CancelBooking moves a confirmed booking to cancelled. Any other current
// status, including a confirmed trip that has already ended, is rejected.
func (s *BookingService) CancelBooking(ctx context.Context, ownerID, bookingID string) (*tm.Booking, error) {
	b, err := s.GetBooking(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != tm.StatusConfirmed {
		return nil, utils.ErrInvalidStatusTransition
	}

	b.Status = tm.StatusCancelled
	if _, err := s.bookingRepo.SaveBooking(ctx, *b); err != nil {
		return nil, utils.StorageError("cancel booking", err)
	}
	s.logger.Info("booking cancelled", zap.String("owner_id", ownerID), zap.String("booking_id", bookingID))
	return b, nil
}

// Reconcile appends every stored booking key of the owner that is missing
// from the owner's index and reports how many were added. Only records that
// decode to one of the owner's bookings are indexed: the key prefix alone
// also matches owners whose id extends this one.
func (s *BookingService) Reconcile(ctx context.Context, ownerID string) (int, error) {
	if strings.TrimSpace(ownerID) == "" {
		return 0, utils.ErrUnauthorized
	}

	prefix := tm.TripKeyPrefix(ownerID)
	stored, err := s.bookingRepo.ScanBookingKeys(ctx, prefix)
	if err != nil {
		return 0, utils.StorageError("scan bookings", err)
	}
	indexed, err := s.bookingRepo.IndexedKeys(ctx, ownerID)
	if err != nil {
		return 0, utils.StorageError("read index", err)
	}

	missing := make([]string, 0)
	for _, key := range stored {
		if slices.Contains(indexed, key) || !isBookingID(strings.TrimPrefix(key, prefix)) {
			continue
		}
		missing = append(missing, key)
	}
	records, err := s.bookingRepo.GetBookingsByKeys(ctx, missing)
	if err != nil {
		return 0, utils.StorageError("load bookings", err)
	}

	added := 0
	for _, b := range records {
		key := tm.TripKey(ownerID, b.ID)
		if b.OwnerID != ownerID || !slices.Contains(missing, key) {
			s.logger.Warn("skipping booking of another owner",
				zap.String("owner_id", ownerID),
				zap.String("record_owner_id", b.OwnerID),
				zap.String("booking_id", b.ID))
			continue
		}
		if err := s.bookingRepo.IndexBooking(ctx, ownerID, key); err != nil {
			return added, utils.StorageError("reindex booking", err)
		}
		added++
	}
	if added > 0 {
		s.logger.Info("reconciled orphaned bookings", zap.String("owner_id", ownerID), zap.Int("count", added))
	}
	return added, nil
}

// isBookingID accepts only the canonical lowercase UUID form booking ids are
// issued in, so an id can never carry a key separator.
func isBookingID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

// CompleteExpired persists confirmed→completed for every booking whose end
// date is before today and reports how many were updated.
func (s *BookingService) CompleteExpired(ctx context.Context) (int, error) {
	keys, err := s.bookingRepo.ScanBookingKeys(ctx, tm.AllTripsPrefix())
	if err != nil {
		return 0, utils.StorageError("scan bookings", err)
	}
	bookings, err := s.bookingRepo.GetBookingsByKeys(ctx, keys)
	if err != nil {
		return 0, utils.StorageError("load bookings", err)
	}

	today := s.today()
	updated := 0
	for _, b := range bookings {
		if b.Status != tm.StatusConfirmed || b.EffectiveStatus(today) != tm.StatusCompleted {
			continue
		}
		b.Status = tm.StatusCompleted
		if _, err := s.bookingRepo.SaveBooking(ctx, b); err != nil {
			return updated, utils.StorageError("complete booking", err)
		}
		updated++
	}
	return updated, nil
}

func validTab(tab string) bool {
	switch tab {
	case TabAll, TabUpcoming, TabOngoing, TabCompleted, TabCancelled:
		return true
	}
	return false
}

// inTab expects b.Status to already be the effective status.
func inTab(b tm.Booking, tab string, today civil.Date) bool {
	active := b.Status == tm.StatusConfirmed || b.Status == tm.StatusPending
	switch tab {
	case TabAll:
		return true
	case TabUpcoming:
		return active && b.StartDate.After(today)
	case TabOngoing:
		return active && !b.StartDate.After(today) && !b.EndDate.Before(today)
	case TabCompleted:
		return b.Status == tm.StatusCompleted
	case TabCancelled:
		return b.Status == tm.StatusCancelled
	}
	return false
}
