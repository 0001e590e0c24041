package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	q := b.Quote()
	g := b.Guest()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		RoomID:           b.RoomID(),
		UserEmail:        b.OwnerEmail().Value(),
		CheckIn:          pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:         pgconv.DateToPgtype(b.Stay().CheckOut()),
		NumberOfNights:   int32(q.Nights),   // #nosec G115 -- nights bounded by date range
		NumberOfGuests:   int32(b.Guests()), // #nosec G115 -- bounded by room capacity
		CoordinationFee:  pgconv.CentsToNumeric(q.CoordinationFee.Cents()),
		ServiceAndTaxFee: pgconv.CentsToNumeric(q.ServiceAndTaxFee.Cents()),
		TotalFee:         pgconv.CentsToNumeric(q.Total.Cents()),
		Status:           b.Status().String(),
		GuestTitle:       pgconv.OptionalText(g.Title()),
		GuestName:        pgconv.OptionalText(g.Name()),
		GuestEmail:       pgconv.OptionalText(g.Email()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	checkIn, err := pgconv.DateFromPgtype(row.CheckIn)
	if err != nil {
		return nil, errs.Wrap(err, "check_in")
	}
	checkOut, err := pgconv.DateFromPgtype(row.CheckOut)
	if err != nil {
		return nil, errs.Wrap(err, "check_out")
	}

	coordination, err := moneyFromNumeric(row.CoordinationFee)
	if err != nil {
		return nil, errs.Wrap(err, "coordination_fee")
	}
	service, err := moneyFromNumeric(row.ServiceAndTaxFee)
	if err != nil {
		return nil, errs.Wrap(err, "service_and_tax_fee")
	}
	total, err := moneyFromNumeric(row.TotalFee)
	if err != nil {
		return nil, errs.Wrap(err, "total_fee")
	}

	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	owner, err := user.NewEmail(row.UserEmail)
	if err != nil {
		return nil, errs.Wrap(err, "user_email")
	}

	return booking.ReconstructBooking(
		row.ID,
		row.RoomID,
		owner,
		booking.ReconstructStayRange(checkIn, checkOut),
		int(row.NumberOfGuests),
		int(row.NumberOfNights),
		coordination, service, total,
		status,
		booking.ReconstructGuestContact(
			pgconv.TextOrEmpty(row.GuestTitle),
			pgconv.TextOrEmpty(row.GuestName),
			pgconv.TextOrEmpty(row.GuestEmail),
		),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
