package components

import (
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/usecase"
	"festival-flash-sale/internal/usecase/intake"
	"festival-flash-sale/internal/worker"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSaleModule,
	usecaseIntakeModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSaleModule = fx.Module("usecase/sale",
	fx.Provide(
		usecase.NewLedgerUseCase,
		usecase.NewAdmissionUseCase,
		usecase.NewCompensationUseCase,
		usecase.NewReservationUseCase,
		usecase.NewSaleWindowUseCase,
	),
)

var usecaseIntakeModule = fx.Module("usecase/intake",
	fx.Provide(
		intake.NewProcessor,
		func(p *intake.Processor) usecase.PurchaseSubmitter { return p },
		func(p *intake.Processor) worker.IntakeDrainer { return p },
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
