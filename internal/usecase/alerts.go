package usecase

import (
	"context"
	"log/slog"

	"festival-flash-sale/internal/domain/alert"
)

// raiseAlert logs the alert at error level and publishes it. A publish failure
// is logged only.
func raiseAlert(ctx context.Context, alerter Alerter, logger *slog.Logger, a alert.Alert) {
	logger.Error(a.Message,
		slog.String("alert_kind", string(a.Kind)),
		slog.String("severity", string(a.Severity)),
		slog.String("resource_id", a.ResourceID.String()),
		slog.Any("detail", a.Detail),
	)
	if err := alerter.Raise(ctx, a); err != nil {
		logger.Error("failed to publish alert",
			slog.String("alert_kind", string(a.Kind)),
			slog.String("error", err.Error()),
		)
	}
}
