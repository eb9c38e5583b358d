package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationFailed        = errors.New("validation failed")
	ErrInvalidDuration         = errors.New("invalid trip duration")
	ErrStorageUnavailable      = errors.New("storage unavailable")
	ErrOrphanBooking           = errors.New("booking written but not indexed")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrDraftNotFound           = errors.New("draft not found")
	ErrInvalidStep             = errors.New("invalid wizard step")
	ErrInvalidDay              = errors.New("invalid itinerary day")
	ErrInvalidTab              = errors.New("invalid trips tab")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrIndexContention         = errors.New("index update kept conflicting")
)

// ValidationError carries the user-correctable reasons a draft was rejected.
type ValidationError struct {
	Reasons []string
}

func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.Reasons, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// OrphanBookingError reports a booking record that was stored but could not
// be appended to its owner's index. The record stays reachable by key prefix
// and is picked up by reconciliation.
type OrphanBookingError struct {
	BookingID string
	Key       string
	Err       error
}

func (e *OrphanBookingError) Error() string {
	return fmt.Sprintf("%s: booking %s (%s): %v", ErrOrphanBooking, e.BookingID, e.Key, e.Err)
}

func (e *OrphanBookingError) Is(target error) bool {
	return target == ErrOrphanBooking || target == ErrStorageUnavailable
}

func (e *OrphanBookingError) Unwrap() error {
	return e.Err
}

// StorageError wraps a backend failure as ErrStorageUnavailable.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
