package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                    uuid.UUID `json:"id"`
	RoomNumber            string    `json:"room_number"`
	RoomName              string    `json:"room_name"`
	Description           string    `json:"description"`
	MaxGuests             int       `json:"max_guests"`
	PricePerNightCents    int64     `json:"price_per_night_cents"`
	ServiceAndTaxFeeCents int64     `json:"service_and_tax_fee_cents"`
	Image                 string    `json:"image"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BookingView is a booking joined with its room
type BookingView struct {
	ID                    uuid.UUID
	RoomID                uuid.UUID
	UserEmail             string
	CheckIn               time.Time
	CheckOut              time.Time
	NumberOfNights        int
	NumberOfGuests        int
	CoordinationFeeCents  int64
	ServiceAndTaxFeeCents int64
	TotalFeeCents         int64
	Status                string
	GuestTitle            string
	GuestName             string
	GuestEmail            string
	Room                  *RoomView
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type UserView struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Title        *string
	ProfileImage *string
	PhoneNumber  *string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoomSearchFilter is a validated search request. Stay dates are midnight UTC.
type RoomSearchFilter struct {
	CheckIn       time.Time
	CheckOut      time.Time
	MinGuests     *int
	Text          string
	MinPriceCents *int64
	MaxPriceCents *int64
}

type RoomPage struct {
	Rooms      []*RoomView
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

type BookingPage struct {
	Bookings   []*BookingView
	NextCursor *Cursor
}

// Availability answers whether one room is free for a stay, with the price it would cost.
type Availability struct {
	RoomID                uuid.UUID
	CheckIn               time.Time
	CheckOut              time.Time
	Available             bool
	Nights                int
	RoomSubtotalCents     int64
	CoordinationFeeCents  int64
	ServiceAndTaxFeeCents int64
	TotalCents            int64
}
