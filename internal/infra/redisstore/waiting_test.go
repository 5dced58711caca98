//go:build unit

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/sale"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitingRoom_Enqueue(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	first, second := uuid.New(), uuid.New()

	t.Run("success: new entries ranked by arrival", func(t *testing.T) {
		p, err := s.waiting.Enqueue(ctx, resourceID, first, start)
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeWaiting, p.Outcome)
		assert.Equal(t, int64(0), p.Rank)

		p, err = s.waiting.Enqueue(ctx, resourceID, second, start.Add(time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeWaiting, p.Outcome)
		assert.Equal(t, int64(1), p.Rank)
	})

	t.Run("success: repeated enqueue moves buyer to the back", func(t *testing.T) {
		p, err := s.waiting.Enqueue(ctx, resourceID, first, start.Add(2*time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeAlreadyWaiting, p.Outcome)
		assert.Equal(t, int64(1), p.Rank)

		p, err = s.waiting.Rank(ctx, resourceID, second)
		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Rank)
	})

	t.Run("success: granted buyer is reported admitted", func(t *testing.T) {
		ev, err := s.waiting.Admit(ctx, resourceID, 1, start.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(1), ev.Admitted)
		assert.Equal(t, int64(1), ev.PassCursor)
		assert.Equal(t, int64(1), ev.Waiting)
		assert.Equal(t, int64(2), ev.Enqueued, "a refresh is not a new entry")

		p, err := s.waiting.Enqueue(ctx, resourceID, second, start.Add(2*time.Second))
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeAdmitted, p.Outcome)
		assert.Equal(t, int64(0), p.Rank)
		assert.True(t, p.Admitted())
	})
}

func TestWaitingRoom_Admit(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	buyers := make([]uuid.UUID, 8)
	for i := range buyers {
		buyers[i] = uuid.New()
		_, err := s.waiting.Enqueue(ctx, resourceID, buyers[i], start.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, err)
	}
	target := buyers[5]

	p, err := s.waiting.Rank(ctx, resourceID, target)
	require.NoError(t, err)
	require.Equal(t, int64(5), p.Rank)

	ev, err := s.waiting.Admit(ctx, resourceID, 3, start.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(3), ev.Admitted)
	assert.Equal(t, int64(3), ev.PassCursor)

	p, err = s.waiting.Rank(ctx, resourceID, target)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Rank)
	assert.False(t, p.Admitted())

	for i := 0; i < 3; i++ {
		p, err := s.waiting.Rank(ctx, resourceID, buyers[i])
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.Rank, "evicted buyers keep their rank")
		assert.True(t, p.Admitted())
	}

	ev, err = s.waiting.Admit(ctx, resourceID, 3, start.Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(6), ev.PassCursor)

	p, err = s.waiting.Rank(ctx, resourceID, target)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Rank)
	assert.True(t, p.Admitted())

	t.Run("success: cursor never passes entries ever enqueued", func(t *testing.T) {
		ev, err := s.waiting.Admit(ctx, resourceID, 100, start.Add(3*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(2), ev.Admitted)
		assert.Equal(t, int64(8), ev.PassCursor)
		assert.LessOrEqual(t, ev.PassCursor, ev.Enqueued)
		assert.False(t, ev.Overrun())
		assert.Zero(t, ev.Waiting)
	})

	t.Run("success: zero admits nothing", func(t *testing.T) {
		ev, err := s.waiting.Admit(ctx, resourceID, 0, start.Add(4*time.Second))
		require.NoError(t, err)
		assert.Zero(t, ev.Admitted)
		assert.Equal(t, int64(8), ev.PassCursor)
	})
}

func TestWaitingRoom_Grants(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	early, late, leaving := uuid.New(), uuid.New(), uuid.New()
	for i, b := range []uuid.UUID{early, late, leaving} {
		_, err := s.waiting.Enqueue(ctx, resourceID, b, start.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, err)
	}

	_, err := s.waiting.Admit(ctx, resourceID, 1, start)
	require.NoError(t, err)
	_, err = s.waiting.Admit(ctx, resourceID, 1, start.Add(time.Minute))
	require.NoError(t, err)

	outstanding, err := s.waiting.OutstandingGrants(ctx, resourceID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), outstanding)

	t.Run("success: expire grants issued before cutoff", func(t *testing.T) {
		n, err := s.waiting.ExpireGrants(ctx, resourceID, start.Add(30*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		p, err := s.waiting.Rank(ctx, resourceID, early)
		require.NoError(t, err)
		assert.Equal(t, sale.OutcomeNotFound, p.Outcome)
		assert.Equal(t, int64(2), p.PassCursor, "cursor is not rewound")
	})

	t.Run("success: consume grant", func(t *testing.T) {
		require.NoError(t, s.waiting.ConsumeGrant(ctx, resourceID, late))

		outstanding, err := s.waiting.OutstandingGrants(ctx, resourceID)
		require.NoError(t, err)
		assert.Zero(t, outstanding)
	})

	t.Run("success: remove waiting buyer", func(t *testing.T) {
		require.NoError(t, s.waiting.Remove(ctx, resourceID, leaving))

		p, err := s.waiting.Rank(ctx, resourceID, leaving)
		require.NoError(t, err)
		assert.False(t, p.Found())
		assert.Equal(t, int64(-1), p.Rank)
	})
}

func TestWaitingRoom_SameMillisecond(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	resourceID := uuid.New()
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	buyers := make([]uuid.UUID, 4)
	for i := range buyers {
		buyers[i] = uuid.New()
		p, err := s.waiting.Enqueue(ctx, resourceID, buyers[i], at)
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.Rank, "ranks are unique within one millisecond")
	}

	_, err := s.waiting.Admit(ctx, resourceID, 2, at)
	require.NoError(t, err)

	for i, b := range buyers {
		p, err := s.waiting.Rank(ctx, resourceID, b)
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.Rank, "rank before eviction is the rank granted")
		assert.Equal(t, i < 2, p.Admitted())
	}
}
