package bootstrap

import (
	"festival-flash-sale/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	RedisModule,
	JWTModule,
	MessagingModule,
	components.PersistenceModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
