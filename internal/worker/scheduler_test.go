//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/domain/payment"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase"
	"festival-flash-sale/internal/usecase/intake"
	"festival-flash-sale/internal/worker"
	usecasemock "festival-flash-sale/tests/mock/usecase"
	workermock "festival-flash-sale/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tickAt = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type schedulerMocks struct {
	admission    *usecasemock.MockAdmissionUseCase
	reservations *usecasemock.MockReservationUseCase
	saleWindow   *usecasemock.MockSaleWindowUseCase
	intake       *workermock.MockIntakeDrainer
	payments     *workermock.MockPaymentResultSource
	clock        *clock.MockClock
}

func newScheduler(t *testing.T, cfg config.SaleConfig) (*worker.Scheduler, schedulerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := schedulerMocks{
		admission:    usecasemock.NewMockAdmissionUseCase(ctrl),
		reservations: usecasemock.NewMockReservationUseCase(ctrl),
		saleWindow:   usecasemock.NewMockSaleWindowUseCase(ctrl),
		intake:       workermock.NewMockIntakeDrainer(ctrl),
		payments:     workermock.NewMockPaymentResultSource(ctrl),
		clock:        clock.NewMockClock(tickAt),
	}
	s := worker.NewScheduler(m.admission, m.reservations, m.saleWindow, m.intake, m.payments, m.clock, cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s, m
}

func TestScheduler_AdvanceCursors(t *testing.T) {
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	t.Run("success: every on-sale resource advanced with the tick time", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.saleWindow.EXPECT().OnSale(ctx, tickAt).Return([]uuid.UUID{first, second}, nil)
		m.admission.EXPECT().AdvanceCursor(ctx, first, tickAt).Return(admission.Advance{Admitted: 2, PassCursor: 2}, nil)
		m.admission.EXPECT().AdvanceCursor(ctx, second, tickAt).Return(admission.Advance{}, nil)

		require.NoError(t, s.AdvanceCursors(ctx, tickAt))
	})

	t.Run("error: one failing resource does not stop the rest", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		storeErr := errors.New("redis down")
		m.saleWindow.EXPECT().OnSale(ctx, tickAt).Return([]uuid.UUID{first, second}, nil)
		m.admission.EXPECT().AdvanceCursor(ctx, first, tickAt).Return(admission.Advance{}, storeErr)
		m.admission.EXPECT().AdvanceCursor(ctx, second, tickAt).Return(admission.Advance{Admitted: 1}, nil)

		assert.ErrorIs(t, s.AdvanceCursors(ctx, tickAt), storeErr)
	})

	t.Run("error: catalog unavailable", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.saleWindow.EXPECT().OnSale(ctx, tickAt).Return(nil, errors.New("db down"))

		assert.Error(t, s.AdvanceCursors(ctx, tickAt))
	})
}

func TestScheduler_SyncSaleWindows(t *testing.T) {
	ctx := context.Background()

	t.Run("success: open and close both run", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.saleWindow.EXPECT().OpenDueSales(ctx, tickAt).Return([]uuid.UUID{uuid.New()}, nil)
		m.saleWindow.EXPECT().CloseEndedSales(ctx, tickAt).Return(nil, nil)

		assert.NoError(t, s.SyncSaleWindows(ctx, tickAt))
	})

	t.Run("error: close still runs when open fails", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		openErr := errors.New("seed failed")
		m.saleWindow.EXPECT().OpenDueSales(ctx, tickAt).Return(nil, openErr)
		m.saleWindow.EXPECT().CloseEndedSales(ctx, tickAt).Return([]uuid.UUID{uuid.New()}, nil)

		assert.ErrorIs(t, s.SyncSaleWindows(ctx, tickAt), openErr)
	})
}

func TestScheduler_Drains(t *testing.T) {
	ctx := context.Background()

	t.Run("success: intake batch", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.intake.EXPECT().ProcessBatch(ctx, tickAt).Return(intake.BatchReport{Polled: 3, Persisted: 3}, nil)
		m.intake.EXPECT().Backlog().Return(4, 1, 0)
		assert.NoError(t, s.DrainIntake(ctx, tickAt))
	})

	t.Run("success: idle batch skips the backlog", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.intake.EXPECT().ProcessBatch(ctx, tickAt).Return(intake.BatchReport{}, nil)
		m.intake.EXPECT().Backlog().Times(0)
		assert.NoError(t, s.DrainIntake(ctx, tickAt))
	})

	t.Run("success: error queue", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.intake.EXPECT().ProcessErrorQueue(ctx, tickAt).Return(intake.DrainReport{Drained: 2, Recovered: 2}, nil)
		assert.NoError(t, s.DrainErrorQueue(ctx, tickAt))
	})

	t.Run("error: sweep failure returned", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.reservations.EXPECT().Sweep(ctx, tickAt).Return(usecase.SweepResult{Expired: 1, Failed: 1}, errors.New("partial"))
		assert.Error(t, s.Sweep(ctx, tickAt))
	})
}

func TestScheduler_HandlePayment(t *testing.T) {
	ctx := context.Background()
	result := payment.Result{ResourceID: uuid.New(), SessionID: uuid.New(), Approved: true}

	t.Run("success: completed at clock time", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.clock.Set(tickAt.Add(time.Minute))
		m.reservations.EXPECT().CompletePayment(ctx, result, tickAt.Add(time.Minute)).Return(sale.OutcomeConfirmed, nil)

		s.HandlePayment(ctx, result)
	})

	t.Run("error: failure is swallowed", func(t *testing.T) {
		s, m := newScheduler(t, config.NewTestConfig().Sale)
		m.reservations.EXPECT().CompletePayment(ctx, result, tickAt).Return(sale.Outcome(""), errors.New("redis down"))

		s.HandlePayment(ctx, result)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	cfg := config.NewTestConfig().Sale
	cfg.AdvanceInterval = 5 * time.Millisecond
	cfg.BatchInterval = 0
	cfg.ErrorDrainInterval = 0
	cfg.SweepInterval = 0
	cfg.SaleWindowInterval = 0

	s, m := newScheduler(t, cfg)
	results := make(chan payment.Result, 1)
	result := payment.Result{ResourceID: uuid.New(), SessionID: uuid.New(), Approved: false}
	results <- result

	handled := make(chan struct{})
	m.payments.EXPECT().Results().Return((<-chan payment.Result)(results))
	m.reservations.EXPECT().CompletePayment(gomock.Any(), result, tickAt).
		DoAndReturn(func(context.Context, payment.Result, time.Time) (sale.Outcome, error) {
			close(handled)
			return sale.OutcomeExpired, nil
		})
	m.saleWindow.EXPECT().OnSale(gomock.Any(), tickAt).Return(nil, nil).MinTimes(1)

	s.Start()
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("payment result not consumed")
	}
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
	assert.NoError(t, s.Stop(ctx))
}
