package bootstrap

import (
	"context"

	"festival-flash-sale/internal/infra/redisstore"
	"festival-flash-sale/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client, cleanup, err := redisstore.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
