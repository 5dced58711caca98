//go:build unit

package redisstore_test

import (
	"context"
	"sync"
	"testing"

	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/infra"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s stores, resourceID uuid.UUID, capacity int64) []uuid.UUID {
	t.Helper()
	units, err := inventory.AvailableUnits(resourceID, capacity, nil)
	require.NoError(t, err)
	seeded, n, err := s.stock.Seed(context.Background(), resourceID, capacity, units, true)
	require.NoError(t, err)
	require.True(t, seeded)
	require.Equal(t, capacity, n)
	return units
}

func TestStockStore_Seed(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()

	seed(t, s, resourceID, 3)

	t.Run("success: existing seed kept without overwrite", func(t *testing.T) {
		seeded, _, err := s.stock.Seed(ctx, resourceID, 50, nil, false)
		require.NoError(t, err)
		assert.False(t, seeded)

		count, err := s.stock.Count(ctx, resourceID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		total, err := s.stock.Capacity(ctx, resourceID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("success: reseed skips held units", func(t *testing.T) {
		claim, err := s.stock.Decrement(ctx, resourceID, uuid.New())
		require.NoError(t, err)
		require.True(t, claim.Succeeded())

		units, err := inventory.AvailableUnits(resourceID, 3, nil)
		require.NoError(t, err)
		seeded, n, err := s.stock.Seed(ctx, resourceID, 3, units, true)
		require.NoError(t, err)
		assert.True(t, seeded)
		assert.Equal(t, int64(2), n)
	})

	t.Run("success: registered in resources", func(t *testing.T) {
		ids, err := s.stock.Resources(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, resourceID)
	})
}

func TestStockStore_Decrement(t *testing.T) {
	ctx := context.Background()

	t.Run("success: 100 concurrent buyers against 10 units", func(t *testing.T) {
		s := newStores(t)
		resourceID := uuid.New()
		seed(t, s, resourceID, 10)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			claimed = map[uuid.UUID]int{}
			soldOut int
			failed  int
		)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				claim, err := s.stock.Decrement(ctx, resourceID, uuid.New())
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					failed++
				case claim.Succeeded():
					claimed[claim.UnitID]++
				case claim.Outcome == sale.OutcomeSoldOut:
					soldOut++
				}
			}()
		}
		wg.Wait()

		assert.Zero(t, failed)
		assert.Len(t, claimed, 10)
		for unit, n := range claimed {
			assert.Equal(t, 1, n, "unit %s claimed more than once", unit)
		}
		assert.Equal(t, 90, soldOut)

		count, err := s.stock.Count(ctx, resourceID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("error: sale not open", func(t *testing.T) {
		s := newStores(t)
		_, err := s.stock.Decrement(ctx, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSaleNotOpen)
	})

	t.Run("error: negative counter is an integrity violation", func(t *testing.T) {
		s := newStores(t)
		resourceID := uuid.New()
		seed(t, s, resourceID, 1)
		require.NoError(t, s.mr.Set(key(resourceID, "stock"), "-1"))

		_, err := s.stock.Decrement(ctx, resourceID, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNegativeStock)
		assert.True(t, infra.IsKind(err, infra.KindIntegrity))

		count, err := s.stock.Count(ctx, resourceID)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), count)
	})

	t.Run("error: counter ahead of unit pool", func(t *testing.T) {
		s := newStores(t)
		resourceID := uuid.New()
		seed(t, s, resourceID, 1)
		require.NoError(t, s.mr.Set(key(resourceID, "stock"), "5"))
		s.mr.Del(key(resourceID, "units"))

		_, err := s.stock.Decrement(ctx, resourceID, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStockIntegrity)
	})
}

func TestStockStore_Restore(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	seed(t, s, resourceID, 2)

	session := uuid.New()
	claim, err := s.stock.Decrement(ctx, resourceID, session)
	require.NoError(t, err)
	require.True(t, claim.Succeeded())

	t.Run("error: other session cannot restore", func(t *testing.T) {
		res, err := s.stock.Restore(ctx, resourceID, claim.UnitID, uuid.New())
		require.NoError(t, err)
		assert.False(t, res.Restored)
		assert.Equal(t, int64(1), res.Remaining)
	})

	t.Run("success: holder restores once", func(t *testing.T) {
		res, err := s.stock.Restore(ctx, resourceID, claim.UnitID, session)
		require.NoError(t, err)
		assert.Equal(t, inventory.Restore{Restored: true, Remaining: 2, Total: 2}, res)
		assert.False(t, res.OverCapacity())

		again, err := s.stock.Restore(ctx, resourceID, claim.UnitID, session)
		require.NoError(t, err)
		assert.False(t, again.Restored)
		assert.Equal(t, int64(2), again.Remaining)
	})
}

func TestStockStore_Archive(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	seed(t, s, resourceID, 1)

	require.NoError(t, s.client.ZAdd(ctx, key(resourceID, "reservations"), redisZ(uuid.NewString())).Err())

	archived, err := s.stock.Archive(ctx, resourceID)
	require.NoError(t, err)
	assert.False(t, archived, "live reservation blocks archive")

	s.mr.Del(key(resourceID, "reservations"))
	archived, err = s.stock.Archive(ctx, resourceID)
	require.NoError(t, err)
	assert.True(t, archived)

	assert.False(t, s.mr.Exists(key(resourceID, "stock")))
	ids, err := s.stock.Resources(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, resourceID)

	_, err = s.stock.Count(ctx, resourceID)
	assert.ErrorIs(t, err, errs.ErrSaleNotOpen)
}
