package redisstore

import (
	"context"
	"errors"
	"log/slog"

	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/infra"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// StockStore keeps the remaining counter and the pool of unit ids of every
// resource. Each mutation is one Lua script.
type StockStore struct {
	base
}

func NewStockStore(client redis.UniversalClient, cfg config.RedisConfig, logger *slog.Logger) *StockStore {
	return &StockStore{base: newBase(client, cfg, logger)}
}

// Seed writes capacity and the unit pool. Units held by a live reservation or
// already sold are left out. Without overwrite an existing seed is kept and
// seeded is false.
func (s *StockStore) Seed(ctx context.Context, resourceID uuid.UUID, capacity int64, units []uuid.UUID, overwrite bool) (seeded bool, remaining int64, err error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	flag := "0"
	if overwrite {
		flag = "1"
	}
	args := make([]any, 0, len(units)+2)
	args = append(args, flag, capacity)
	for _, u := range units {
		args = append(args, u.String())
	}

	n, err := seedScript.Run(ctx, s.client, []string{k.stock, k.total, k.pool, k.holders, k.sold}, args...).Int64()
	if err != nil {
		return false, 0, s.wrap("failed to seed stock", resourceID, err)
	}
	if n < 0 {
		return false, 0, nil
	}
	if err := s.client.SAdd(ctx, resourcesKey, resourceID.String()).Err(); err != nil {
		return false, 0, s.wrap("failed to register resource", resourceID, err)
	}
	return true, n, nil
}

func (s *StockStore) Decrement(ctx context.Context, resourceID, sessionID uuid.UUID) (inventory.Claim, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	unit, err := decrementScript.Run(ctx, s.client, []string{k.stock, k.pool, k.holders}, sessionID.String()).Text()
	if errors.Is(err, redis.Nil) {
		return inventory.Claim{Outcome: sale.OutcomeSoldOut}, nil
	}
	if err != nil {
		return inventory.Claim{}, s.wrap("failed to decrement stock", resourceID, err)
	}

	unitID, err := uuid.Parse(unit)
	if err != nil {
		return inventory.Claim{}, infra.WrapRepoErr(s.logger, infra.KindIntegrity, "invalid unit id in pool", errs.Wrap(errs.ErrStockIntegrity, err.Error()))
	}
	return inventory.Claim{Outcome: sale.OutcomeReserved, UnitID: unitID}, nil
}

// Restore puts a unit back when sessionID still holds it. A second call for
// the same unit and session is a no-op.
func (s *StockStore) Restore(ctx context.Context, resourceID, unitID, sessionID uuid.UUID) (inventory.Restore, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	vals, err := restoreScript.Run(ctx, s.client, []string{k.stock, k.total, k.pool, k.holders}, unitID.String(), sessionID.String()).Int64Slice()
	if err != nil {
		return inventory.Restore{}, s.wrap("failed to restore stock", resourceID, err)
	}
	if len(vals) != 3 {
		return inventory.Restore{}, infra.WrapRepoErr(s.logger, infra.KindStoreUnavailable, "unexpected restore reply", errs.ErrStoreUnavailable)
	}
	return inventory.Restore{Restored: vals[0] == 1, Remaining: vals[1], Total: vals[2]}, nil
}

// Count returns the raw counter, negative values included.
func (s *StockStore) Count(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	return s.getInt(ctx, resourceID, keysFor(resourceID).stock, "failed to read stock")
}

func (s *StockStore) Capacity(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	return s.getInt(ctx, resourceID, keysFor(resourceID).total, "failed to read capacity")
}

func (s *StockStore) getInt(ctx context.Context, resourceID uuid.UUID, key, msg string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, errs.Wrapf(errs.ErrSaleNotOpen, "resource %s", resourceID)
	}
	if err != nil {
		return 0, s.wrap(msg, resourceID, err)
	}
	return n, nil
}

// Resources lists every seeded resource.
func (s *StockStore) Resources(ctx context.Context) ([]uuid.UUID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	members, err := s.client.SMembers(ctx, resourcesKey).Result()
	if err != nil {
		return nil, s.wrap("failed to list resources", uuid.Nil, err)
	}
	ids, err := parseUUIDs(members)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIntegrity, "invalid resource registry", errs.Wrap(errs.ErrStockIntegrity, err.Error()))
	}
	return ids, nil
}

// Archive drops every key of a resource once no reservation is live.
func (s *StockStore) Archive(ctx context.Context, resourceID uuid.UUID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	keys := append([]string{k.expiry}, k.all()...)
	n, err := archiveScript.Run(ctx, s.client, keys).Int64()
	if err != nil {
		return false, s.wrap("failed to archive resource", resourceID, err)
	}
	if n <= 0 {
		return false, nil
	}
	if err := s.client.SRem(ctx, resourcesKey, resourceID.String()).Err(); err != nil {
		return false, s.wrap("failed to unregister resource", resourceID, err)
	}
	return true, nil
}
