package response

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	RoomName         string    `json:"room_name"`
	Description      string    `json:"description"`
	MaxGuests        int       `json:"max_guests"`
	PricePerNight    string    `json:"price_per_night"`
	ServiceAndTaxFee string    `json:"service_and_tax_fee"`
	Image            string    `json:"image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RoomSearchResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

type AvailabilityResponse struct {
	RoomID           uuid.UUID `json:"room_id"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Available        bool      `json:"available"`
	Nights           int       `json:"nights"`
	RoomSubtotal     string    `json:"room_subtotal"`
	CoordinationFee  string    `json:"coordination_fee"`
	ServiceAndTaxFee string    `json:"service_and_tax_fee"`
	Total            string    `json:"total"`
}

func FromRoomView(v *queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:               v.ID,
		RoomNumber:       v.RoomNumber,
		RoomName:         v.RoomName,
		Description:      v.Description,
		MaxGuests:        v.MaxGuests,
		PricePerNight:    formatCents(v.PricePerNightCents),
		ServiceAndTaxFee: formatCents(v.ServiceAndTaxFeeCents),
		Image:            v.Image,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromRoomPage(p *queries.RoomPage) RoomSearchResponse {
	rooms := make([]RoomResponse, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		rooms = append(rooms, FromRoomView(r))
	}
	return RoomSearchResponse{
		Rooms:      rooms,
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func FromAvailability(a *queries.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID:           a.RoomID,
		CheckIn:          a.CheckIn.Format(dateLayout),
		CheckOut:         a.CheckOut.Format(dateLayout),
		Available:        a.Available,
		Nights:           a.Nights,
		RoomSubtotal:     formatCents(a.RoomSubtotalCents),
		CoordinationFee:  formatCents(a.CoordinationFeeCents),
		ServiceAndTaxFee: formatCents(a.ServiceAndTaxFeeCents),
		Total:            formatCents(a.TotalCents),
	}
}

// formatCents renders stored cents as a two-decimal amount.
func formatCents(c int64) string {
	m, err := money.NewMoney(c)
	if err != nil {
		return money.Zero().String()
	}
	return m.String()
}
