package shared

import (
	"fmt"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

// Usecase-level sentinels. Handlers map these to HTTP statuses.
var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrInvalidRange     = errs.New("check-in must be today or later and check-out must be after check-in")
	ErrCapacityExceeded = errs.New("guest count exceeds room capacity")
	ErrBookingConflict  = errs.New("room not available for selected dates")
	ErrInvalidDuration  = errs.New("invalid stay duration")
	ErrForbidden        = errs.New("forbidden")
	ErrUnauthenticated  = errs.New("unauthenticated")
)

// StayTooLong is ErrInvalidDuration carrying the night limit as a hint.
func StayTooLong() error {
	return errs.WithHint(ErrInvalidDuration, fmt.Sprintf("stays are limited to %d nights", booking.MaxNights))
}

// StoreErr marks transient store failures as ErrStoreUnavailable and leaves others untouched.
func StoreErr(err error, fallback error) error {
	if err == nil {
		return nil
	}
	if infra.IsUnavailable(err) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if fallback == nil {
		return err
	}
	return errs.Mark(err, fallback)
}
