package bootstrap

import (
	"context"
	"log/slog"

	"festival-flash-sale/internal/infra/db"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool. With DB_AUTO_MIGRATE the embedded migrations are
// applied on start, before the HTTP server and the scheduler begin serving.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.DB.AutoMigrate {
				return nil
			}
			applied, err := db.Migrate(ctx, pool, migrations.FS, logger)
			if err != nil {
				return err
			}
			logger.Info("Migrations applied", slog.Int("count", applied))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
