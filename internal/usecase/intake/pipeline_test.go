//go:build unit

package intake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase/intake"
	intakemock "festival-flash-sale/tests/mock/intake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePurchaseRepository keeps one row per stock unit, like the unique index
// on purchases.stock_unit_id.
type fakePurchaseRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]purchase.Purchase
	err  error
}

func newFakePurchaseRepository() *fakePurchaseRepository {
	return &fakePurchaseRepository{rows: map[uuid.UUID]purchase.Purchase{}}
}

func (f *fakePurchaseRepository) SaveBatch(_ context.Context, purchases []purchase.Purchase) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var inserted int64
	for _, p := range purchases {
		if _, ok := f.rows[p.StockUnitID]; ok {
			continue
		}
		f.rows[p.StockUnitID] = p
		inserted++
	}
	return inserted, nil
}

func (f *fakePurchaseRepository) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakePurchaseRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type pipelineDeps struct {
	repo        *fakePurchaseRepository
	validator   *intakemock.MockResourceValidator
	deadLetters *intakemock.MockDeadLetterRecorder
	alerter     *intakemock.MockAlerter
	processor   *intake.Processor
}

func newPipeline(t *testing.T) pipelineDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := pipelineDeps{
		repo:        newFakePurchaseRepository(),
		validator:   intakemock.NewMockResourceValidator(ctrl),
		deadLetters: intakemock.NewMockDeadLetterRecorder(ctrl),
		alerter:     intakemock.NewMockAlerter(ctrl),
	}
	deps.processor = intake.NewProcessor(
		deps.repo,
		deps.validator,
		deps.deadLetters,
		deps.alerter,
		config.NewTestConfig().Sale,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return deps
}

// allExist makes the validator report every requested resource as existing.
func allExist(validator *intakemock.MockResourceValidator) {
	validator.EXPECT().ExistingResourceIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
			return ids, nil
		}).AnyTimes()
}

var batchNow = time.Date(2026, 5, 1, 10, 5, 0, 0, time.UTC)

func TestProcessor_Submit(t *testing.T) {
	ctx := context.Background()
	d := newPipeline(t)
	resourceID := uuid.New()

	outcomes := map[sale.Outcome]int{}
	for i := 0; i < 15; i++ {
		outcomes[d.processor.Submit(ctx, newIntent(t, resourceID))]++
	}

	assert.Equal(t, 10, outcomes[sale.OutcomeQueued])
	assert.Equal(t, 5, outcomes[sale.OutcomeQueueFull])

	queued, parked, retrying := d.processor.Backlog()
	assert.Equal(t, 10, queued)
	assert.Equal(t, 5, parked)
	assert.Zero(t, retrying)

	t.Run("success: overflow is persisted by the error drain", func(t *testing.T) {
		allExist(d.validator)

		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, int64(10), report.Persisted)

		drain, err := d.processor.ProcessErrorQueue(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 5, drain.Recovered)
		assert.Equal(t, 15, d.repo.count())
	})
}

func TestProcessor_BatchSize(t *testing.T) {
	ctx := context.Background()
	d := newPipeline(t)

	assert.Equal(t, 100, d.processor.BatchSize(), "small backlog is clamped up to the minimum")

	for i := 0; i < 5; i++ {
		d.processor.Submit(ctx, newIntent(t, uuid.New()))
	}
	assert.Equal(t, 100, d.processor.BatchSize())
}

func TestProcessor_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: empty queue does nothing", func(t *testing.T) {
		d := newPipeline(t)
		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, intake.BatchReport{}, report)
	})

	t.Run("success: replayed intent persisted at most once", func(t *testing.T) {
		d := newPipeline(t)
		allExist(d.validator)
		intent := newIntent(t, uuid.New())

		d.processor.Submit(ctx, intent)
		d.processor.Submit(ctx, intent)
		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, int64(1), report.Persisted)
		assert.Equal(t, int64(1), report.Duplicates)

		d.processor.Submit(ctx, intent)
		report, err = d.processor.ProcessBatch(ctx, batchNow.Add(time.Second))
		require.NoError(t, err)
		assert.Zero(t, report.Persisted)
		assert.Equal(t, 1, d.repo.count())
	})

	t.Run("success: items of a removed resource are dead-lettered individually", func(t *testing.T) {
		d := newPipeline(t)
		live, removed := uuid.New(), uuid.New()
		good := newIntent(t, live)
		bad := newIntent(t, removed)

		d.validator.EXPECT().ExistingResourceIDs(gomock.Any(), gomock.Any()).Return([]uuid.UUID{live}, nil)
		d.deadLetters.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, letter purchase.DeadLetter) error {
				assert.Equal(t, bad, letter.Intent)
				assert.Equal(t, purchase.ReasonValidation, letter.Reason)
				assert.Equal(t, batchNow, letter.FailedAt)
				return nil
			})

		d.processor.Submit(ctx, good)
		d.processor.Submit(ctx, bad)
		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Invalid)
		assert.Equal(t, int64(1), report.Persisted)
	})

	t.Run("error: failed write moves the batch to the error queue", func(t *testing.T) {
		d := newPipeline(t)
		allExist(d.validator)
		d.repo.fail(errors.New("connection refused"))

		for i := 0; i < 3; i++ {
			d.processor.Submit(ctx, newIntent(t, uuid.New()))
		}
		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 3, report.MovedToRetry)

		queued, parked, _ := d.processor.Backlog()
		assert.Zero(t, queued)
		assert.Equal(t, 3, parked)
	})

	t.Run("error: failed validation moves the batch to the error queue", func(t *testing.T) {
		d := newPipeline(t)
		d.validator.EXPECT().ExistingResourceIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		d.processor.Submit(ctx, newIntent(t, uuid.New()))
		report, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 1, report.MovedToRetry)
		assert.Zero(t, d.repo.count())
	})
}

func TestProcessor_ProcessErrorQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: attempt 4 with ceiling 3 is dead-lettered exactly once", func(t *testing.T) {
		d := newPipeline(t)
		allExist(d.validator)
		d.repo.fail(errors.New("connection refused"))

		intent := newIntent(t, uuid.New())
		d.processor.Submit(ctx, intent)
		_, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)

		d.deadLetters.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, letter purchase.DeadLetter) error {
				assert.Equal(t, intent, letter.Intent)
				assert.Equal(t, 4, letter.Attempts)
				assert.Equal(t, purchase.ReasonRetriesExceeded, letter.Reason)
				return nil
			}).Times(1)
		d.alerter.EXPECT().Raise(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a alert.Alert) error {
				assert.Equal(t, alert.KindDeadLetter, a.Kind)
				assert.Equal(t, intent.ResourceID, a.ResourceID)
				return nil
			}).Times(1)

		for attempt := 1; attempt <= 3; attempt++ {
			report, err := d.processor.ProcessErrorQueue(ctx, batchNow)
			require.NoError(t, err)
			assert.Equal(t, 1, report.Requeued, "attempt %d", attempt)
			_, _, retrying := d.processor.Backlog()
			assert.Equal(t, 1, retrying)
		}

		report, err := d.processor.ProcessErrorQueue(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 1, report.DeadLettered)

		_, parked, retrying := d.processor.Backlog()
		assert.Zero(t, parked)
		assert.Zero(t, retrying)

		report, err = d.processor.ProcessErrorQueue(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, intake.DrainReport{}, report)
	})

	t.Run("success: recovery clears the attempt count", func(t *testing.T) {
		d := newPipeline(t)
		allExist(d.validator)
		d.repo.fail(errors.New("connection refused"))

		d.processor.Submit(ctx, newIntent(t, uuid.New()))
		_, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)

		_, err = d.processor.ProcessErrorQueue(ctx, batchNow)
		require.NoError(t, err)
		_, _, retrying := d.processor.Backlog()
		require.Equal(t, 1, retrying)

		d.repo.fail(nil)
		report, err := d.processor.ProcessErrorQueue(ctx, batchNow)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Recovered)

		_, parked, retrying := d.processor.Backlog()
		assert.Zero(t, parked)
		assert.Zero(t, retrying)
		assert.Equal(t, 1, d.repo.count())
	})

	t.Run("error: unrecorded dead letter raises its own alert", func(t *testing.T) {
		d := newPipeline(t)
		allExist(d.validator)
		d.repo.fail(errors.New("connection refused"))

		d.processor.Submit(ctx, newIntent(t, uuid.New()))
		_, err := d.processor.ProcessBatch(ctx, batchNow)
		require.NoError(t, err)

		d.deadLetters.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		var kinds []alert.Kind
		d.alerter.EXPECT().Raise(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a alert.Alert) error {
				kinds = append(kinds, a.Kind)
				return nil
			}).Times(2)

		for i := 0; i < 4; i++ {
			_, err := d.processor.ProcessErrorQueue(ctx, batchNow)
			require.NoError(t, err)
		}
		assert.Equal(t, []alert.Kind{alert.KindDeadLetterLost, alert.KindDeadLetter}, kinds)
	})
}
