//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// RoomBuilder defaults to the standard room of the seed catalog: 80.00 a night, 12.00 fee, 2 guests.
type RoomBuilder struct {
	ID          uuid.UUID
	Number      string
	Name        string
	Description string
	MaxGuests   int
	PriceCents  int64
	FeeCents    int64
	Image       string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Number:      "101",
		Name:        "Standard Room",
		Description: "Cozy room with a queen bed",
		MaxGuests:   2,
		PriceCents:  8000,
		FeeCents:    1200,
		Image:       "standard.jpg",
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	now := time.Now()
	return room.ReconstructRoom(
		r.ID, r.Number, r.Name, r.Description, r.MaxGuests,
		money.MustMoney(r.PriceCents), money.MustMoney(r.FeeCents),
		r.Image, now, now,
	)
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	now := time.Now()
	return sqlc.Rooms{
		ID:               r.ID,
		RoomNumber:       r.Number,
		RoomName:         r.Name,
		Description:      r.Description,
		MaxGuests:        int32(r.MaxGuests),
		PricePerNight:    pgconv.CentsToNumeric(r.PriceCents),
		ServiceAndTaxFee: pgconv.CentsToNumeric(r.FeeCents),
		Image:            r.Image,
		CreatedAt:        pgconv.TimeToPgtype(now),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}
}

func (r *RoomBuilder) BuildReadModel() *queries.RoomView {
	return &queries.RoomView{
		ID:                    r.ID,
		RoomNumber:            r.Number,
		RoomName:              r.Name,
		Description:           r.Description,
		MaxGuests:             r.MaxGuests,
		PricePerNightCents:    r.PriceCents,
		ServiceAndTaxFeeCents: r.FeeCents,
		Image:                 r.Image,
	}
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithMaxGuests(n int) *RoomBuilder {
	r.MaxGuests = n
	return r
}

func (r *RoomBuilder) WithPrice(priceCents, feeCents int64) *RoomBuilder {
	r.PriceCents = priceCents
	r.FeeCents = feeCents
	return r
}
