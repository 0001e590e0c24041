package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded  = errors.New("number of guests exceeds room capacity")
	ErrRoomUnavailable   = errors.New("room is not available for the selected dates")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Location        *time.Location
}

// Today is the current calendar day at the hotel.
func (s *Services) Today() time.Time {
	return Today(s.Clock.Now(), s.Location)
}

type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	ownerEmail user.Email
	stay       StayRange
	guests     int
	quote      Quote
	status     Status
	guest      GuestContact
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking validates a request against the room and the bookings that currently
// overlap it, then prices it. It runs the checks in the order callers rely on:
// range, guest count, capacity, availability, duration.
func NewBooking(
	services *Services,
	rm *room.Room,
	owner user.Email,
	stay StayRange,
	guests int,
	guest GuestContact,
	existing []*Booking,
) (*Booking, error) {
	if err := stay.ValidateNotBefore(services.Today()); err != nil {
		return nil, err
	}

	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !rm.Accommodates(guests) {
		return nil, ErrCapacityExceeded
	}

	if !IsAvailable(stay, existing, nil) {
		return nil, ErrRoomUnavailable
	}

	quote, err := services.PriceCalculator.Quote(rm, stay)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:         uuid.New(),
		roomID:     rm.ID(),
		ownerEmail: owner,
		stay:       stay,
		guests:     guests,
		quote:      quote,
		status:     StatusConfirmed,
		guest:      guest,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructBooking rebuilds a stored booking. The room subtotal is derived from the stored totals.
func ReconstructBooking(
	id, roomID uuid.UUID,
	ownerEmail user.Email,
	stay StayRange,
	guests int,
	nights int,
	coordinationFee, serviceAndTaxFee, total money.Money,
	status Status,
	guest GuestContact,
	createdAt, updatedAt time.Time,
) *Booking {
	subtotal := money.Zero()
	if c := total.Cents() - coordinationFee.Cents() - serviceAndTaxFee.Cents(); c > 0 {
		subtotal = money.MustMoney(c)
	}

	return &Booking{
		id:         id,
		roomID:     roomID,
		ownerEmail: ownerEmail,
		stay:       stay,
		guests:     guests,
		quote: Quote{
			Nights:           nights,
			RoomSubtotal:     subtotal,
			CoordinationFee:  coordinationFee,
			ServiceAndTaxFee: serviceAndTaxFee,
			Total:            total,
		},
		status:    status,
		guest:     guest,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel moves the booking to cancelled. Cancelling twice is a no-op and reports changed=false.
func (b *Booking) Cancel(now time.Time) (changed bool) {
	if b.status.IsTerminal() {
		return false
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return true
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(email user.Email) bool {
	return b.ownerEmail.Equals(email)
}

func (b *Booking) IsActive() bool {
	return !b.status.IsTerminal()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) OwnerEmail() user.Email { return b.ownerEmail }
func (b *Booking) Stay() StayRange        { return b.stay }
func (b *Booking) Guests() int            { return b.guests }
func (b *Booking) Quote() Quote           { return b.quote }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Guest() GuestContact    { return b.guest }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
