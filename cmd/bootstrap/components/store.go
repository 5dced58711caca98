package components

import (
	"festival-flash-sale/internal/infra/redisstore"
	"festival-flash-sale/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			redisstore.NewStockStore,
			fx.As(new(usecase.StockStore)),
		),
		fx.Annotate(
			redisstore.NewWaitingRoom,
			fx.As(new(usecase.WaitingRoomStore)),
		),
		fx.Annotate(
			redisstore.NewReservationStore,
			fx.As(new(usecase.ReservationStore)),
		),
	),
)
