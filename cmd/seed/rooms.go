package main

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type roomFile struct {
	Rooms []roomEntry `yaml:"rooms"`
}

type roomEntry struct {
	RoomNumber       string `yaml:"room_number"`
	RoomName         string `yaml:"room_name"`
	Description      string `yaml:"description"`
	MaxGuests        int    `yaml:"max_guests"`
	PricePerNight    string `yaml:"price_per_night"`
	ServiceAndTaxFee string `yaml:"service_and_tax_fee"`
	Image            string `yaml:"image"`
}

// LoadRooms parses the catalog file. Amounts are decimal strings like "80.00".
func LoadRooms(raw []byte) ([]*room.Room, error) {
	var f roomFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errs.Wrap(err, "failed to parse room catalog")
	}
	if len(f.Rooms) == 0 {
		return nil, errs.New("room catalog is empty")
	}

	seen := make(map[string]struct{}, len(f.Rooms))
	rooms := make([]*room.Room, 0, len(f.Rooms))
	for _, e := range f.Rooms {
		if _, dup := seen[e.RoomNumber]; dup {
			return nil, errs.New("duplicate room number " + e.RoomNumber)
		}
		seen[e.RoomNumber] = struct{}{}

		price, err := money.Parse(e.PricePerNight)
		if err != nil {
			return nil, errs.Wrap(err, "room "+e.RoomNumber+": price_per_night")
		}
		fee, err := money.Parse(e.ServiceAndTaxFee)
		if err != nil {
			return nil, errs.Wrap(err, "room "+e.RoomNumber+": service_and_tax_fee")
		}

		// The id is a placeholder; upserts keep the stored id for known room numbers
		rm, err := room.NewRoom(uuid.New(), e.RoomNumber, e.RoomName, e.Description, e.MaxGuests, price, fee, e.Image)
		if err != nil {
			return nil, errs.Wrap(err, "room "+e.RoomNumber)
		}
		rooms = append(rooms, rm)
	}
	return rooms, nil
}
