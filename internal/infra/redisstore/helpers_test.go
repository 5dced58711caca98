//go:build unit

package redisstore_test

import (
	"io"
	"log/slog"
	"testing"

	"festival-flash-sale/internal/infra/redisstore"
	"festival-flash-sale/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type stores struct {
	mr           *miniredis.Miniredis
	client       *redis.Client
	stock        *redisstore.StockStore
	waiting      *redisstore.WaitingRoom
	reservations *redisstore.ReservationStore
}

func newStores(t *testing.T) stores {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), PoolSize: 128})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig().Redis
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return stores{
		mr:           mr,
		client:       client,
		stock:        redisstore.NewStockStore(client, cfg, logger),
		waiting:      redisstore.NewWaitingRoom(client, cfg, logger),
		reservations: redisstore.NewReservationStore(client, cfg, logger),
	}
}

func key(resourceID uuid.UUID, suffix string) string {
	return "sale:{" + resourceID.String() + "}:" + suffix
}

func redisZ(member string) redis.Z {
	return redis.Z{Score: 1, Member: member}
}
