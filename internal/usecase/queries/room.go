package queries

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomQueries interface {
	Search(ctx context.Context, in SearchInput) (*RoomPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	CheckAvailability(ctx context.Context, id uuid.UUID, checkIn, checkOut string) (*Availability, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Search(ctx context.Context, f RoomSearchFilter, limit, offset int32) ([]*RoomView, error)
	Count(ctx context.Context, f RoomSearchFilter) (int64, error)
}

// SearchInput is the raw search request. Dates use the 2006-01-02 layout.
type SearchInput struct {
	CheckIn        string
	CheckOut       string
	NumberOfGuests *int
	Text           string
	MinPriceCents  *int64
	MaxPriceCents  *int64
	Page           int
	PerPage        int
}

type roomQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
	clock    clock.Clock
	pricing  booking.PriceCalculator
	cfg      config.BookingConfig
}

func NewRoomQueries(rooms RoomReadStore, bookings BookingReadStore, clk clock.Clock, cfg config.Config) RoomQueries {
	return &roomQueriesImpl{
		rooms:    rooms,
		bookings: bookings,
		clock:    clk,
		pricing:  booking.NewDefaultPriceCalculator(),
		cfg:      cfg.Booking,
	}
}

func (q *roomQueriesImpl) Search(ctx context.Context, in SearchInput) (*RoomPage, error) {
	stay, err := q.parseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	if in.MinPriceCents != nil && in.MaxPriceCents != nil && *in.MinPriceCents > *in.MaxPriceCents {
		return nil, shared.ErrInvalidRange
	}

	filter := RoomSearchFilter{
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		MinGuests:     in.NumberOfGuests,
		Text:          in.Text,
		MinPriceCents: in.MinPriceCents,
		MaxPriceCents: in.MaxPriceCents,
	}
	page := shared.NormalizePage(in.Page, in.PerPage, q.cfg.DefaultPerPage, q.cfg.MaxPerPage)

	total, err := q.rooms.Count(ctx, filter)
	if err != nil {
		return nil, shared.StoreErr(err, nil)
	}

	rooms := []*RoomView{}
	if int64(page.Offset()) < total {
		// #nosec G115 -- page size capped by MaxPerPage
		rooms, err = q.rooms.Search(ctx, filter, int32(page.PerPage), page.Offset())
		if err != nil {
			return nil, shared.StoreErr(err, nil)
		}
	}

	return &RoomPage{
		Rooms:      rooms,
		Page:       page.Number,
		PerPage:    page.PerPage,
		Total:      total,
		TotalPages: int((total + int64(page.PerPage) - 1) / int64(page.PerPage)),
	}, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRoomNotFound
		}
		return nil, shared.StoreErr(err, nil)
	}
	return view, nil
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, id uuid.UUID, checkIn, checkOut string) (*Availability, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := q.parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	overlapping, err := q.bookings.HasOverlap(ctx, id, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, shared.StoreErr(err, nil)
	}

	quote, err := q.pricing.Quote(roomFromView(view), stay)
	if err != nil {
		return nil, shared.ErrInvalidDuration
	}

	return &Availability{
		RoomID:                id,
		CheckIn:               stay.CheckIn(),
		CheckOut:              stay.CheckOut(),
		Available:             !overlapping,
		Nights:                quote.Nights,
		RoomSubtotalCents:     quote.RoomSubtotal.Cents(),
		CoordinationFeeCents:  quote.CoordinationFee.Cents(),
		ServiceAndTaxFeeCents: quote.ServiceAndTaxFee.Cents(),
		TotalCents:            quote.Total.Cents(),
	}, nil
}

func (q *roomQueriesImpl) parseStay(checkIn, checkOut string) (booking.StayRange, error) {
	stay, err := booking.ParseStayRange(checkIn, checkOut)
	if errors.Is(err, booking.ErrStayTooLong) {
		return booking.StayRange{}, shared.StayTooLong()
	}
	if err != nil {
		return booking.StayRange{}, shared.ErrInvalidRange
	}
	if err := stay.ValidateNotBefore(booking.Today(q.clock.Now(), q.cfg.Location())); err != nil {
		return booking.StayRange{}, shared.ErrInvalidRange
	}
	return stay, nil
}

func roomFromView(v *RoomView) *room.Room {
	return room.ReconstructRoom(
		v.ID, v.RoomNumber, v.RoomName, v.Description, v.MaxGuests,
		money.MustMoney(v.PricePerNightCents), money.MustMoney(v.ServiceAndTaxFeeCents),
		v.Image, v.CreatedAt, v.UpdatedAt,
	)
}
