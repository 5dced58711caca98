//go:build unit

package usecase_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enqueueBuyers(t *testing.T, e *saleEnv, resourceID uuid.UUID, n int, from time.Time) []uuid.UUID {
	t.Helper()
	buyers := make([]uuid.UUID, n)
	for i := range buyers {
		buyers[i] = uuid.New()
		pos, err := e.admission.Enqueue(context.Background(), resourceID, buyers[i], from.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, err)
		require.Equal(t, sale.OutcomeWaiting, pos.Outcome)
		require.Equal(t, int64(i), pos.Rank)
	}
	return buyers
}

func TestAdmissionUseCase_AdvanceCursor(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rank 5 admitted on the second advance", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 3)
		buyers := enqueueBuyers(t, e, resourceID, 8, saleStart)
		target := buyers[5]

		adv, err := e.admission.AdvanceCursor(ctx, resourceID, saleStart.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(3), adv.Admittable)
		assert.Equal(t, int64(3), adv.PassCursor)

		pos, err := e.admission.Rank(ctx, resourceID, target)
		require.NoError(t, err)
		assert.Equal(t, int64(5), pos.Rank)
		assert.False(t, pos.Admitted())
		assert.Equal(t, int64(2), pos.Ahead())

		// The first three grants lapse unused, so the same stock admits three more.
		later := saleStart.Add(time.Second + e.cfg.GrantTTL + time.Second)
		adv, err = e.admission.AdvanceCursor(ctx, resourceID, later)
		require.NoError(t, err)
		assert.Equal(t, int64(3), adv.Expired)
		assert.Equal(t, int64(3), adv.Admittable)
		assert.Equal(t, int64(6), adv.PassCursor)

		pos, err = e.admission.Rank(ctx, resourceID, target)
		require.NoError(t, err)
		assert.Equal(t, int64(5), pos.Rank)
		assert.True(t, pos.Admitted())

		admitted, err := e.admission.IsAdmitted(ctx, resourceID, target)
		require.NoError(t, err)
		assert.True(t, admitted)
	})

	t.Run("success: outstanding grants hold back admission", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 2)
		enqueueBuyers(t, e, resourceID, 5, saleStart)

		adv, err := e.admission.AdvanceCursor(ctx, resourceID, saleStart)
		require.NoError(t, err)
		assert.Equal(t, int64(2), adv.Admitted)

		adv, err = e.admission.AdvanceCursor(ctx, resourceID, saleStart.Add(time.Second))
		require.NoError(t, err)
		assert.Zero(t, adv.Admittable)
		assert.Zero(t, adv.Admitted)
		assert.Equal(t, int64(2), adv.PassCursor)
	})

	t.Run("success: empty waiting room leaves the cursor", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 10)

		adv, err := e.admission.AdvanceCursor(ctx, resourceID, saleStart)
		require.NoError(t, err)
		assert.Equal(t, int64(10), adv.Admittable)
		assert.Zero(t, adv.Admitted)
		assert.Zero(t, adv.PassCursor)
	})

	t.Run("error: sale not open", func(t *testing.T) {
		e := newSaleEnv(t)

		_, err := e.admission.AdvanceCursor(ctx, uuid.New(), saleStart)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSaleNotOpen)
	})
}

func TestAdmissionUseCase_CursorMonotonic(t *testing.T) {
	ctx := context.Background()
	e := newSaleEnv(t)
	resourceID := uuid.New()
	e.seed(t, resourceID, 4)

	rng := rand.New(rand.NewSource(7))
	now := saleStart
	var (
		buyers   []uuid.UUID
		enqueued int64
		cursor   int64
	)
	for step := 0; step < 300; step++ {
		now = now.Add(time.Duration(rng.Intn(90)) * time.Second)
		switch rng.Intn(4) {
		case 0, 1:
			id := uuid.New()
			buyers = append(buyers, id)
			_, err := e.admission.Enqueue(ctx, resourceID, id, now)
			require.NoError(t, err)
			enqueued++
		case 2:
			if len(buyers) == 0 {
				continue
			}
			require.NoError(t, e.admission.Dequeue(ctx, resourceID, buyers[rng.Intn(len(buyers))]))
		case 3:
			adv, err := e.admission.AdvanceCursor(ctx, resourceID, now)
			require.NoError(t, err)
			require.GreaterOrEqual(t, adv.PassCursor, cursor, "cursor moved back at step %d", step)
			require.LessOrEqual(t, adv.PassCursor, enqueued, "cursor passed enqueued count at step %d", step)
			cursor = adv.PassCursor
		}
	}
}

func TestAdmissionUseCase_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: repeated enqueue moves to the back", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		buyers := enqueueBuyers(t, e, resourceID, 3, saleStart)

		pos, err := e.admission.Enqueue(ctx, resourceID, buyers[0], saleStart.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeAlreadyWaiting, pos.Outcome)
		assert.Equal(t, int64(2), pos.Rank)
	})

	t.Run("success: admitted buyer keeps the grant", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 1)
		buyerID := uuid.New()
		e.admit(t, resourceID, buyerID, saleStart)

		pos, err := e.admission.Enqueue(ctx, resourceID, buyerID, saleStart.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeAdmitted, pos.Outcome)
		assert.True(t, pos.Admitted())
	})

	t.Run("success: dequeued buyer is not found", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		buyers := enqueueBuyers(t, e, resourceID, 2, saleStart)

		require.NoError(t, e.admission.Dequeue(ctx, resourceID, buyers[0]))

		pos, err := e.admission.Rank(ctx, resourceID, buyers[0])
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeNotFound, pos.Outcome)
		assert.False(t, pos.Found())

		pos, err = e.admission.Rank(ctx, resourceID, buyers[1])
		require.NoError(t, err)
		assert.Equal(t, int64(0), pos.Rank)
	})

	t.Run("success: buyer holding a reservation does not take a grant", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 2)
		holder := e.reserveOne(t, resourceID, saleStart)

		pos, err := e.admission.Enqueue(ctx, resourceID, holder.BuyerID(), saleStart.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeAlreadyReserved, pos.Outcome)
		assert.False(t, pos.Found())

		next := uuid.New()
		_, err = e.admission.Enqueue(ctx, resourceID, next, saleStart.Add(2*time.Second))
		require.NoError(t, err)

		adv, err := e.admission.AdvanceCursor(ctx, resourceID, saleStart.Add(3*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(1), adv.Admittable)
		assert.Equal(t, int64(1), adv.Admitted)
		assert.Zero(t, adv.Waiting)

		admitted, err := e.admission.IsAdmitted(ctx, resourceID, next)
		require.NoError(t, err)
		assert.True(t, admitted)
	})

	t.Run("success: same millisecond keeps arrival order", func(t *testing.T) {
		e := newSaleEnv(t)
		resourceID := uuid.New()
		e.seed(t, resourceID, 1)

		buyers := make([]uuid.UUID, 5)
		for i := range buyers {
			buyers[i] = uuid.New()
			pos, err := e.admission.Enqueue(ctx, resourceID, buyers[i], saleStart)
			require.NoError(t, err)
			assert.Equal(t, int64(i), pos.Rank)
		}

		adv, err := e.admission.AdvanceCursor(ctx, resourceID, saleStart)
		require.NoError(t, err)
		require.Equal(t, int64(1), adv.Admitted)
		assert.Equal(t, int64(4), adv.Waiting)

		admitted, err := e.admission.IsAdmitted(ctx, resourceID, buyers[0])
		require.NoError(t, err)
		assert.True(t, admitted, "first arrival is admitted first")

		for i, b := range buyers[1:] {
			pos, err := e.admission.Rank(ctx, resourceID, b)
			require.NoError(t, err)
			assert.Equal(t, int64(i+1), pos.Rank)
			assert.Equal(t, int64(i), pos.Ahead())
		}
	})
}
