package components

import (
	"festival-flash-sale/internal/handler"
	"festival-flash-sale/internal/handler/api"
	"festival-flash-sale/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWaitingHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(w *api.WaitingHandler, r *api.ReservationHandler, p *api.PaymentHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Waiting: w, Reservation: r, Payment: p, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
