package request

// CreateBookingRequest mirrors the public booking form. Title and name are optional;
// email is required for guests and ignored as owner when the caller is signed in.
type CreateBookingRequest struct {
	RoomID         string `json:"room_id" binding:"required,uuid"`
	CheckIn        string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut       string `json:"check_out" binding:"required,datetime=2006-01-02"`
	NumberOfGuests int    `json:"number_of_guests" binding:"required,min=1"`
	Email          string `json:"email" binding:"omitempty,email"`
	Title          string `json:"title" binding:"omitempty,max=50"`
	Name           string `json:"name" binding:"omitempty,max=255"`
}

// ListBookingsQuery: an absent limit uses the default; an explicit limit must be at least 1.
type ListBookingsQuery struct {
	Limit *int   `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}
