package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, room *api.RoomHandler, booking *api.BookingHandler, user *api.UserHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Room:    room,
		Booking: booking,
		User:    user,
	}
}
