package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAlerter publishes operator alerts to a topic, keyed by resource so
// alerts of one sale stay ordered.
type KafkaAlerter struct {
	writer       messageWriter
	maxAttempts  int
	retryWait    time.Duration
	writeTimeout time.Duration
	clock        clock.Clock
	logger       *slog.Logger
}

func NewKafkaAlerter(cfg config.KafkaConfig, clk clock.Clock, logger *slog.Logger) (*KafkaAlerter, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker required")
	}
	if cfg.AlertTopic == "" {
		return nil, fmt.Errorf("kafka: alert topic required")
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AlertTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireAll,
	}
	return newKafkaAlerter(w, cfg, clk, logger), nil
}

func newKafkaAlerter(w messageWriter, cfg config.KafkaConfig, clk clock.Clock, logger *slog.Logger) *KafkaAlerter {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &KafkaAlerter{
		writer:       w,
		maxAttempts:  max(cfg.MaxAttempts, 1),
		retryWait:    100 * time.Millisecond,
		writeTimeout: writeTimeout,
		clock:        clk,
		logger:       logger,
	}
}

// Raise publishes a, retrying transient write failures with backoff.
func (k *KafkaAlerter) Raise(ctx context.Context, a alert.Alert) error {
	if a.RaisedAt.IsZero() {
		a.RaisedAt = k.clock.Now().UTC()
	}
	value, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(a.ResourceID.String()),
		Value: value,
		Time:  a.RaisedAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(a.Kind)},
			{Key: "severity", Value: []byte(a.Severity)},
		},
	}

	write := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, k.writeTimeout)
		defer cancel()
		return k.writer.WriteMessages(attemptCtx, msg)
	}
	if err := backoff.Retry(write, backoff.WithContext(k.backOff(), ctx)); err != nil {
		k.logger.Error("alert publish failed",
			slog.String("kind", string(a.Kind)),
			slog.Int("attempts", k.maxAttempts),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("publish alert after %d attempts: %w", k.maxAttempts, err)
	}
	return nil
}

func (k *KafkaAlerter) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = k.retryWait
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(k.maxAttempts-1))
}

func (k *KafkaAlerter) Close() error {
	return k.writer.Close()
}
