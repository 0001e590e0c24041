package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViewsByEmailFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByEmailFirstPageParams) ([]sqlc.ListBookingViewsByEmailFirstPageRow, error)
	ListBookingViewsByEmailKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByEmailKeysetParams) ([]sqlc.ListBookingViewsByEmailKeysetRow, error)
	FindOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingsParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
	timeout time.Duration
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX, cfg config.Config) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view, err := toBookingView(row.Bookings, row.Rooms)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *BookingReadStore) ListByEmailFirstPage(ctx context.Context, email string, limit int32) ([]*queries.BookingView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.queries.ListBookingViewsByEmailFirstPage(ctx, r.db, sqlc.ListBookingViewsByEmailFirstPageParams{
		UserEmail: email,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := toBookingView(row.Bookings, row.Rooms)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *BookingReadStore) ListByEmailKeyset(ctx context.Context, email string, lastCheckIn time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.queries.ListBookingViewsByEmailKeyset(ctx, r.db, sqlc.ListBookingViewsByEmailKeysetParams{
		UserEmail: email,
		Limit:     limit,
		CheckIn:   pgconv.DateToPgtype(lastCheckIn),
		ID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := toBookingView(row.Bookings, row.Rooms)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

// HasOverlap is the read-only availability probe used outside booking transactions.
func (r *BookingReadStore) HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.queries.FindOverlappingBookings(ctx, r.db, sqlc.FindOverlappingBookingsParams{
		RoomID:    roomID,
		CheckOut:  pgconv.DateToPgtype(checkOut),
		CheckIn:   pgconv.DateToPgtype(checkIn),
		ExcludeID: pgtype.UUID{},
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}
	return len(rows) > 0, nil
}

func toBookingView(b sqlc.Bookings, rm sqlc.Rooms) (*queries.BookingView, error) {
	checkIn, err := pgconv.DateFromPgtype(b.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := pgconv.DateFromPgtype(b.CheckOut)
	if err != nil {
		return nil, err
	}
	coordination, err := pgconv.NumericToCents(b.CoordinationFee)
	if err != nil {
		return nil, err
	}
	service, err := pgconv.NumericToCents(b.ServiceAndTaxFee)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.NumericToCents(b.TotalFee)
	if err != nil {
		return nil, err
	}
	roomView, err := toRoomView(rm)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:                    b.ID,
		RoomID:                b.RoomID,
		UserEmail:             b.UserEmail,
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		NumberOfNights:        int(b.NumberOfNights),
		NumberOfGuests:        int(b.NumberOfGuests),
		CoordinationFeeCents:  coordination,
		ServiceAndTaxFeeCents: service,
		TotalFeeCents:         total,
		Status:                b.Status,
		GuestTitle:            pgconv.TextOrEmpty(b.GuestTitle),
		GuestName:             pgconv.TextOrEmpty(b.GuestName),
		GuestEmail:            pgconv.TextOrEmpty(b.GuestEmail),
		Room:                  roomView,
		CreatedAt:             pgconv.TimeFromPgtype(b.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(b.UpdatedAt),
	}, nil
}
