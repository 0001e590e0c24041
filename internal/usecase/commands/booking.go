package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingMetrics receives booking outcomes.
type BookingMetrics interface {
	IncBookingCreated(status string)
	IncBookingCanceled()
	IncBookingConflict()
}

type CreateBookingInput struct {
	RoomID         uuid.UUID
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	Title          string
	Name           string
	Email          string
}

type BookingCommands interface {
	// Create books a room for an authenticated caller or, with identity nil, for a guest by email.
	Create(ctx context.Context, in CreateBookingInput, identity *shared.Identity) (uuid.UUID, error)
	// Cancel is idempotent: cancelling a cancelled booking succeeds without changes.
	Cancel(ctx context.Context, bookingID uuid.UUID, identity *shared.Identity) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	metrics  BookingMetrics
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, metrics BookingMetrics) BookingCommands {
	return &bookingCommandsImpl{
		uow: uow,
		services: &booking.Services{
			Clock:           clk,
			PriceCalculator: booking.NewDefaultPriceCalculator(),
			Location:        cfg.Booking.Location(),
		},
		metrics: metrics,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, identity *shared.Identity) (uuid.UUID, error) {
	// Request problems are reported only once the room is known to exist
	stay, stayErr := booking.ParseStayRange(in.CheckIn, in.CheckOut)

	var created *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockForBooking(ctx, tx.DB(), in.RoomID)
		if err != nil {
			return err
		}
		owner, guest, err := resolveOwner(in, identity)
		if err != nil {
			return err
		}
		if stayErr != nil {
			return stayErr
		}

		existing, err := tx.Bookings().FindOverlapping(ctx, tx.DB(), rm.ID(), stay, nil)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(c.services, rm, owner, stay, in.NumberOfGuests, guest, existing)
		if errors.Is(err, booking.ErrCapacityExceeded) {
			return errs.WithHint(err, fmt.Sprintf("room %s allows at most %d guests", rm.Number(), rm.MaxGuests()))
		}
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		mapped := mapCreateErr(err)
		if errs.Is(mapped, shared.ErrBookingConflict) {
			c.metrics.IncBookingConflict()
		}
		return uuid.Nil, mapped
	}

	c.metrics.IncBookingCreated(created.Status().String())
	slog.Info("booking created",
		"booking_id", created.ID(),
		"room_id", created.RoomID(),
		"stay", created.Stay().String(),
		"total", created.Quote().Total.String())
	return created.ID(), nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, identity *shared.Identity) error {
	if identity == nil {
		return shared.ErrUnauthenticated
	}

	changed := false
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if !b.IsOwnedBy(identity.Email) {
			return shared.ErrForbidden
		}

		changed = b.Cancel(c.services.Clock.Now())
		if !changed {
			return nil
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
	if err != nil {
		switch {
		case errs.Is(err, shared.ErrForbidden):
			return shared.ErrForbidden
		case infra.IsKind(err, infra.KindNotFound):
			return shared.ErrBookingNotFound
		}
		return shared.StoreErr(err, nil)
	}

	if changed {
		c.metrics.IncBookingCanceled()
		slog.Info("booking cancelled", "booking_id", bookingID)
	}
	return nil
}

// resolveOwner picks the booking owner: the signed-in email, else the guest email.
func resolveOwner(in CreateBookingInput, identity *shared.Identity) (user.Email, booking.GuestContact, error) {
	email := in.Email
	name := in.Name
	if identity != nil {
		if email == "" {
			email = identity.Email.Value()
		}
		if name == "" {
			name = identity.Name
		}
	}

	guest, err := booking.NewGuestContact(in.Title, name, email)
	if err != nil {
		return user.Email{}, booking.GuestContact{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	if identity != nil {
		return identity.Email, guest, nil
	}

	if guest.Email() == "" {
		return user.Email{}, booking.GuestContact{}, errs.Mark(booking.ErrMissingGuestEmail, errs.ErrDomainValidation)
	}
	owner, err := user.NewEmail(guest.Email())
	if err != nil {
		return user.Email{}, booking.GuestContact{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return owner, guest, nil
}

func mapCreateErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return shared.ErrRoomNotFound
	case errors.Is(err, booking.ErrInvalidRange):
		return shared.ErrInvalidRange
	case errors.Is(err, booking.ErrStayTooLong):
		return shared.StayTooLong()
	case errors.Is(err, booking.ErrInvalidGuestCount):
		return errs.WithHint(shared.ErrCapacityExceeded, err.Error())
	case errors.Is(err, booking.ErrCapacityExceeded):
		return errs.CarryHints(shared.ErrCapacityExceeded, err)
	case errors.Is(err, booking.ErrRoomUnavailable), infra.IsKind(err, infra.KindConflict):
		return shared.ErrBookingConflict
	case errors.Is(err, booking.ErrInvalidDuration):
		return shared.ErrInvalidDuration
	}
	return shared.StoreErr(err, nil)
}
