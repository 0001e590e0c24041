package api

import (
	"net/http"

	"hotel-booking/internal/domain/money"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary Search rooms
// @Description Rooms that fit the guests and are free for the whole stay
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param number_of_guests query int false "Guest count"
// @Param q query string false "Text matched against room name, number and description"
// @Param min_price query string false "Minimum nightly price, e.g. 80.00"
// @Param max_price query string false "Maximum nightly price, e.g. 150.00"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 10)"
// @Success 200 {object} resdto.RoomSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/search [get]
func (h *RoomHandler) Search(c *gin.Context) {
	var req reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	minPrice, err := parsePrice(req.MinPrice)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min_price", nil)
		return
	}
	maxPrice, err := parsePrice(req.MaxPrice)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
		return
	}

	page, err := h.q.Search(c.Request.Context(), queries.SearchInput{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		NumberOfGuests: req.NumberOfGuests,
		Text:           req.Query,
		MinPriceCents:  minPrice,
		MaxPriceCents:  maxPrice,
		Page:           req.Page,
		PerPage:        req.PerPage,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomPage(page))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Room availability
// @Description Whether the room is free for the stay, with the price quote
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	avail, err := h.q.CheckAvailability(c.Request.Context(), id, req.CheckIn, req.CheckOut)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(avail))
}

func parsePrice(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	m, err := money.Parse(s)
	if err != nil {
		return nil, err
	}
	cents := m.Cents()
	return &cents, nil
}
