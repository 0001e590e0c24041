package converter

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func RoomFromRow(row sqlc.Rooms) (*room.Room, error) {
	price, err := moneyFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrap(err, "price_per_night")
	}
	fee, err := moneyFromNumeric(row.ServiceAndTaxFee)
	if err != nil {
		return nil, errs.Wrap(err, "service_and_tax_fee")
	}

	return room.ReconstructRoom(
		row.ID,
		row.RoomNumber,
		row.RoomName,
		row.Description,
		int(row.MaxGuests),
		price,
		fee,
		row.Image,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomToUpsertParams(rm *room.Room) sqlc.UpsertRoomParams {
	return sqlc.UpsertRoomParams{
		RoomNumber:       rm.Number(),
		RoomName:         rm.Name(),
		Description:      rm.Description(),
		MaxGuests:        int32(rm.MaxGuests()), // #nosec G115 -- validated positive and small
		PricePerNight:    pgconv.CentsToNumeric(rm.PricePerNight().Cents()),
		ServiceAndTaxFee: pgconv.CentsToNumeric(rm.Fee().Cents()),
		Image:            rm.Image(),
	}
}

func moneyFromNumeric(n pgtype.Numeric) (money.Money, error) {
	cents, err := pgconv.NumericToCents(n)
	if err != nil {
		return money.Money{}, err
	}
	return money.NewMoney(cents)
}
