package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID     `json:"id"`
	RoomID           uuid.UUID     `json:"room_id"`
	UserEmail        string        `json:"user_email"`
	CheckIn          string        `json:"check_in"`
	CheckOut         string        `json:"check_out"`
	NumberOfNights   int           `json:"number_of_nights"`
	NumberOfGuests   int           `json:"number_of_guests"`
	CoordinationFee  string        `json:"coordination_fee"`
	ServiceAndTaxFee string        `json:"service_and_tax_fee"`
	TotalFee         string        `json:"total_fee"`
	Status           string        `json:"status"`
	Title            string        `json:"title,omitempty"`
	Name             string        `json:"name,omitempty"`
	Email            string        `json:"email,omitempty"`
	Room             *RoomResponse `json:"room,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	res := BookingResponse{
		ID:               v.ID,
		RoomID:           v.RoomID,
		UserEmail:        v.UserEmail,
		CheckIn:          v.CheckIn.Format(dateLayout),
		CheckOut:         v.CheckOut.Format(dateLayout),
		NumberOfNights:   v.NumberOfNights,
		NumberOfGuests:   v.NumberOfGuests,
		CoordinationFee:  formatCents(v.CoordinationFeeCents),
		ServiceAndTaxFee: formatCents(v.ServiceAndTaxFeeCents),
		TotalFee:         formatCents(v.TotalFeeCents),
		Status:           v.Status,
		Title:            v.GuestTitle,
		Name:             v.GuestName,
		Email:            v.GuestEmail,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Room != nil {
		rm := FromRoomView(v.Room)
		res.Room = &rm
	}
	return res
}

func FromBookingPage(p *queries.BookingPage) BookingListResponse {
	items := make([]BookingResponse, 0, len(p.Bookings))
	for _, b := range p.Bookings {
		items = append(items, FromBookingView(b))
	}
	res := BookingListResponse{Bookings: items}
	if p.NextCursor != nil {
		next := p.NextCursor.After
		res.NextCursor = &next
	}
	return res
}
