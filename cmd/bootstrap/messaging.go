package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"festival-flash-sale/internal/infra/alerting"
	"festival-flash-sale/internal/infra/paysim"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase"
	"festival-flash-sale/internal/usecase/intake"
	"festival-flash-sale/internal/worker"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewAlerter,
			fx.As(new(usecase.Alerter)),
			fx.As(new(intake.Alerter)),
		),
		NewPaymentSimulator,
		func(s *paysim.Simulator) usecase.PaymentGateway { return s },
		func(s *paysim.Simulator) worker.PaymentResultSource { return s },
	),
)

type closableAlerter interface {
	usecase.Alerter
	Close() error
}

// NewAlerter publishes to Kafka when brokers are configured and falls back to
// the log otherwise.
func NewAlerter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (closableAlerter, error) {
	kafkaCfg := cfg.Kafka
	kafkaCfg.Brokers = nonEmpty(kafkaCfg.Brokers)

	var a closableAlerter
	if len(kafkaCfg.Brokers) == 0 {
		logger.Info("no kafka brokers configured, alerts go to the log")
		a = alerting.NewLogAlerter(logger)
	} else {
		k, err := alerting.NewKafkaAlerter(kafkaCfg, clk, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("alerts published to kafka", "topic", kafkaCfg.AlertTopic)
		a = k
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return a.Close()
		},
	})
	return a, nil
}

func NewPaymentSimulator(lc fx.Lifecycle, cfg config.PaymentConfig, logger *slog.Logger) *paysim.Simulator {
	s := paysim.NewSimulator(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return s.Close()
		},
	})
	return s
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
