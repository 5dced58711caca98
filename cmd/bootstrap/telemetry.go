package bootstrap

import (
	"context"
	"log/slog"

	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		SetupTracing,
	),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Endpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.Endpoint)
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
