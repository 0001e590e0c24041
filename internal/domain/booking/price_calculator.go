package booking

import (
	"errors"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
)

var ErrInvalidDuration = errors.New("stay must be at least one night")

// Quote is the fee breakdown snapshotted into a booking.
type Quote struct {
	Nights           int
	RoomSubtotal     money.Money
	CoordinationFee  money.Money
	ServiceAndTaxFee money.Money
	Total            money.Money
}

type PriceCalculator interface {
	Quote(rm *room.Room, stay StayRange) (Quote, error)
}

// DefaultPriceCalculator charges nights × nightly price plus the room's flat fee,
// which is booked into both the coordination and the service-and-tax column.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) Quote(rm *room.Room, stay StayRange) (Quote, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return Quote{}, ErrInvalidDuration
	}

	subtotal, err := rm.PricePerNight().Multiply(int64(nights))
	if err != nil {
		return Quote{}, err
	}

	fee := rm.Fee()
	total, err := subtotal.Add(fee)
	if err != nil {
		return Quote{}, err
	}
	total, err = total.Add(fee)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Nights:           nights,
		RoomSubtotal:     subtotal,
		CoordinationFee:  fee,
		ServiceAndTaxFee: fee,
		Total:            total,
	}, nil
}
