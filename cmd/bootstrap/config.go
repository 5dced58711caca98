package bootstrap

import (
	"festival-flash-sale/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SaleConfig { return cfg.Sale },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
	),
)
