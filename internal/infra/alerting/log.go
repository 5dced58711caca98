package alerting

import (
	"context"
	"log/slog"

	"festival-flash-sale/internal/domain/alert"
)

// LogAlerter is used when no broker is configured. The alert is already
// logged by the caller; this adds a single structured record tagged for
// log-based alerting rules.
type LogAlerter struct {
	logger *slog.Logger
}

func NewLogAlerter(logger *slog.Logger) *LogAlerter {
	return &LogAlerter{logger: logger}
}

func (l *LogAlerter) Raise(ctx context.Context, a alert.Alert) error {
	attrs := []any{
		slog.String("alert_kind", string(a.Kind)),
		slog.String("severity", string(a.Severity)),
		slog.String("resource_id", a.ResourceID.String()),
	}
	for k, v := range a.Detail {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.ErrorContext(ctx, "ALERT: "+a.Message, attrs...)
	return nil
}

func (l *LogAlerter) Close() error { return nil }
