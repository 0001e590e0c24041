package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	FindOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingsParams) ([]sqlc.Bookings, error)
	LockBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create inserts the booking. An overlap rejected by bookings_no_overlap surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	params := sqlc.FindOverlappingBookingsParams{
		RoomID:    roomID,
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	}

	rows, err := r.queries.FindOverlappingBookings(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}

	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert overlapping bookings", err, infra.KindDBFailure)
	}
	return bookings, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:     b.ID(),
		Status: b.Status().String(),
	}
	if err := r.queries.UpdateBookingStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
