package components

import (
	"hotel-management-api/internal/handler"
	"hotel-management-api/internal/handler/api"
	"hotel-management-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomRateHandler,
		api.NewGuestHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			reservation *api.ReservationHandler,
			roomRate *api.RoomRateHandler,
			guest *api.GuestHandler,
		) handler.Handlers {
			return handler.Handlers{Auth: auth, Reservation: reservation, RoomRate: roomRate, Guest: guest}
		},
	),
	fx.Invoke(handler.NewRouter),
)
