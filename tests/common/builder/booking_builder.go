//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder describes a 3 night stay in the default RoomBuilder room (total 264.00).
type BookingBuilder struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	OwnerEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	PriceCents int64
	FeeCents   int64
	Status     booking.Status
	Title      string
	Name       string
	GuestEmail string
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := booking.ToDate(time.Now().UTC()).AddDate(0, 0, 7)
	return &BookingBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		OwnerEmail: "test@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		PriceCents: 8000,
		FeeCents:   1200,
		Status:     booking.StatusConfirmed,
		Title:      "Mr",
		Name:       "Test User",
		GuestEmail: "test@example.com",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = booking.ToDate(checkIn)
	b.CheckOut = booking.ToDate(checkOut)
	return b
}

func (b *BookingBuilder) WithOwner(email string) *BookingBuilder {
	b.OwnerEmail = email
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

func (b *BookingBuilder) totalCents() int64 {
	return int64(b.nights())*b.PriceCents + 2*b.FeeCents
}

// BuildDomain rebuilds a stored booking without running creation checks.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	owner, err := user.NewEmail(b.OwnerEmail)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return booking.ReconstructBooking(
		b.ID, b.RoomID, owner,
		booking.ReconstructStayRange(b.CheckIn, b.CheckOut),
		b.Guests, b.nights(),
		money.MustMoney(b.FeeCents), money.MustMoney(b.FeeCents), money.MustMoney(b.totalCents()),
		b.Status,
		booking.ReconstructGuestContact(b.Title, b.Name, b.GuestEmail),
		now, now,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	now := time.Now()
	return sqlc.Bookings{
		ID:               b.ID,
		RoomID:           b.RoomID,
		UserEmail:        b.OwnerEmail,
		CheckIn:          pgconv.DateToPgtype(b.CheckIn),
		CheckOut:         pgconv.DateToPgtype(b.CheckOut),
		NumberOfNights:   int32(b.nights()),
		NumberOfGuests:   int32(b.Guests),
		CoordinationFee:  pgconv.CentsToNumeric(b.FeeCents),
		ServiceAndTaxFee: pgconv.CentsToNumeric(b.FeeCents),
		TotalFee:         pgconv.CentsToNumeric(b.totalCents()),
		Status:           b.Status.String(),
		GuestTitle:       pgconv.OptionalText(b.Title),
		GuestName:        pgconv.OptionalText(b.Name),
		GuestEmail:       pgconv.OptionalText(b.GuestEmail),
		CreatedAt:        pgconv.TimeToPgtype(now),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}
}

func (b *BookingBuilder) BuildReadModel(rm *queries.RoomView) *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:                    b.ID,
		RoomID:                b.RoomID,
		UserEmail:             b.OwnerEmail,
		CheckIn:               b.CheckIn,
		CheckOut:              b.CheckOut,
		NumberOfNights:        b.nights(),
		NumberOfGuests:        b.Guests,
		CoordinationFeeCents:  b.FeeCents,
		ServiceAndTaxFeeCents: b.FeeCents,
		TotalFeeCents:         b.totalCents(),
		Status:                b.Status.String(),
		GuestTitle:            b.Title,
		GuestName:             b.Name,
		GuestEmail:            b.GuestEmail,
		Room:                  rm,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:         b.RoomID.String(),
		CheckIn:        b.CheckIn.Format(booking.DateLayout),
		CheckOut:       b.CheckOut.Format(booking.DateLayout),
		NumberOfGuests: b.Guests,
		Email:          b.GuestEmail,
		Title:          b.Title,
		Name:           b.Name,
	}
}
