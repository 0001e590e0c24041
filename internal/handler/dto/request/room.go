package request

type SearchRoomsQuery struct {
	CheckIn        string `form:"check_in"`
	CheckOut       string `form:"check_out"`
	NumberOfGuests *int   `form:"number_of_guests" binding:"omitempty,min=1"`
	Query          string `form:"q" binding:"omitempty,max=255"`
	MinPrice       string `form:"min_price"`
	MaxPrice       string `form:"max_price"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PerPage        int    `form:"per_page" binding:"omitempty,min=1"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}
