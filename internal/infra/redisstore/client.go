package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"festival-flash-sale/internal/infra"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return client, cleanup, nil
}

// Error prefixes raised by the Lua scripts through redis.error_reply.
const (
	scriptErrSaleNotOpen   = "SALE_NOT_OPEN"
	scriptErrNegativeStock = "NEGATIVE_STOCK"
	scriptErrPoolEmpty     = "STOCK_POOL_EMPTY"
	scriptErrUnitHeld      = "UNIT_ALREADY_HELD"
)

type base struct {
	client  redis.UniversalClient
	timeout time.Duration
	logger  *slog.Logger
}

func newBase(client redis.UniversalClient, cfg config.RedisConfig, logger *slog.Logger) base {
	timeout := cfg.OpTimeout
	if timeout <= 0 {
		timeout = 300 * time.Millisecond
	}
	return base{client: client, timeout: timeout, logger: logger}
}

// Every call is a single round trip, bounded by the op timeout.
func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

func (b base) wrap(op string, resourceID uuid.UUID, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, scriptErrSaleNotOpen):
		return errs.Wrapf(errs.ErrSaleNotOpen, "resource %s", resourceID)
	case strings.Contains(msg, scriptErrNegativeStock):
		return infra.WrapRepoErr(b.logger, infra.KindIntegrity, op, errs.Wrap(errs.ErrNegativeStock, msg))
	case strings.Contains(msg, scriptErrPoolEmpty), strings.Contains(msg, scriptErrUnitHeld):
		return infra.WrapRepoErr(b.logger, infra.KindIntegrity, op, errs.Wrap(errs.ErrStockIntegrity, msg))
	default:
		return infra.WrapRepoErr(b.logger, infra.KindStoreUnavailable, op, errors.Join(errs.ErrStoreUnavailable, err))
	}
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in store: %w", v, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}
