package queries

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForGuest(ctx context.Context, identity *shared.Identity, after *Cursor, limit int) (*BookingPage, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByEmailFirstPage(ctx context.Context, email string, limit int32) ([]*BookingView, error)
	ListByEmailKeyset(ctx context.Context, email string, lastCheckIn time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	cfg   config.BookingConfig
}

func NewBookingQueries(store BookingReadStore, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{store: store, cfg: cfg.Booking}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrBookingNotFound
		}
		return nil, shared.StoreErr(err, nil)
	}
	return view, nil
}

// ListForGuest pages through the caller's bookings, newest check-in first.
func (q *bookingQueriesImpl) ListForGuest(ctx context.Context, identity *shared.Identity, after *Cursor, limit int) (*BookingPage, error) {
	if identity == nil {
		return nil, shared.ErrUnauthenticated
	}

	limit = ValidateLimit(limit, q.cfg.DefaultPerPage, q.cfg.MaxPerPage)
	fetch := int32(limit + 1) // #nosec G115 -- limit capped by MaxPerPage
	email := identity.Email.Value()

	var (
		rows []*BookingView
		err  error
	)
	if after != nil && after.After != "" {
		lastCheckIn, lastID, decErr := DecodeAfterCursor(after.After)
		if decErr != nil {
			return nil, decErr
		}
		rows, err = q.store.ListByEmailKeyset(ctx, email, lastCheckIn, lastID, fetch)
	} else {
		rows, err = q.store.ListByEmailFirstPage(ctx, email, fetch)
	}
	if err != nil {
		return nil, shared.StoreErr(err, nil)
	}

	page := &BookingPage{Bookings: rows}
	if len(rows) > limit {
		page.Bookings = rows[:limit]
		last := page.Bookings[limit-1]
		page.NextCursor = &Cursor{After: EncodeAfterCursor(last.CheckIn, last.ID)}
	}
	return page, nil
}
