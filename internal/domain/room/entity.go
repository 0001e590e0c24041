package room

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber = errors.New("room number cannot be empty")
	ErrEmptyRoomName     = errors.New("room name cannot be empty")
	ErrRoomNameTooLong   = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity   = errors.New("max guests must be a positive integer")
)

const (
	MaxRoomNameLength = 255
)

// Room is a bookable unit of the catalog. It is immutable once seeded.
type Room struct {
	id            uuid.UUID
	number        string
	name          string
	description   string
	maxGuests     int
	pricePerNight money.Money
	fee           money.Money
	image         string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(id uuid.UUID, number, name, description string, maxGuests int, pricePerNight, fee money.Money, image string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}

	if err := validateRoomName(name); err != nil {
		return nil, err
	}

	if maxGuests <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:            id,
		number:        number,
		name:          strings.TrimSpace(name),
		description:   strings.TrimSpace(description),
		maxGuests:     maxGuests,
		pricePerNight: pricePerNight,
		fee:           fee,
		image:         image,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number, name, description string,
	maxGuests int,
	pricePerNight, fee money.Money,
	image string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		number:        number,
		name:          name,
		description:   description,
		maxGuests:     maxGuests,
		pricePerNight: pricePerNight,
		fee:           fee,
		image:         image,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Accommodates reports whether a party of the given size fits the room.
func (r *Room) Accommodates(guests int) bool {
	return guests >= 1 && guests <= r.maxGuests
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Number() string             { return r.number }
func (r *Room) Name() string               { return r.name }
func (r *Room) Description() string        { return r.description }
func (r *Room) MaxGuests() int             { return r.maxGuests }
func (r *Room) PricePerNight() money.Money { return r.pricePerNight }
func (r *Room) Fee() money.Money           { return r.fee }
func (r *Room) Image() string              { return r.image }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
