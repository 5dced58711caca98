package worker

//go:generate mockgen -source=scheduler.go -destination=../../tests/mock/worker/scheduler.go -package=workermock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"festival-flash-sale/internal/domain/payment"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase"
	"festival-flash-sale/internal/usecase/intake"

	"golang.org/x/sync/errgroup"
)

// IntakeDrainer is the persistence side of the intake pipeline.
type IntakeDrainer interface {
	ProcessBatch(ctx context.Context, now time.Time) (intake.BatchReport, error)
	ProcessErrorQueue(ctx context.Context, now time.Time) (intake.DrainReport, error)
	Backlog() (queued, parked, retrying int)
}

type PaymentResultSource interface {
	Results() <-chan payment.Result
}

// Scheduler drives every time-based operation of the sale. Each job runs on
// its own ticker and receives now from the clock; a failing tick is logged
// and the job keeps its schedule.
type Scheduler struct {
	admission    usecase.AdmissionUseCase
	reservations usecase.ReservationUseCase
	saleWindow   usecase.SaleWindowUseCase
	intake       IntakeDrainer
	payments     PaymentResultSource
	clock        clock.Clock
	cfg          config.SaleConfig
	logger       *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

func NewScheduler(
	admission usecase.AdmissionUseCase,
	reservations usecase.ReservationUseCase,
	saleWindow usecase.SaleWindowUseCase,
	intake IntakeDrainer,
	payments PaymentResultSource,
	clk clock.Clock,
	cfg config.SaleConfig,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		admission:    admission,
		reservations: reservations,
		saleWindow:   saleWindow,
		intake:       intake,
		payments:     payments,
		clock:        clk,
		cfg:          cfg,
		logger:       logger,
	}
}

// Run blocks until ctx is cancelled or the payment results channel closes.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.every(ctx, "sale_window", s.cfg.SaleWindowInterval, s.SyncSaleWindows) })
	g.Go(func() error { return s.every(ctx, "advance_cursors", s.cfg.AdvanceInterval, s.AdvanceCursors) })
	g.Go(func() error { return s.every(ctx, "intake_batch", s.cfg.BatchInterval, s.DrainIntake) })
	g.Go(func() error { return s.every(ctx, "error_queue", s.cfg.ErrorDrainInterval, s.DrainErrorQueue) })
	g.Go(func() error { return s.every(ctx, "sweep", s.cfg.SweepInterval, s.Sweep) })
	if s.payments != nil {
		g.Go(func() error { return s.consumePayments(ctx) })
	}

	return g.Wait()
}

// Start runs the scheduler in the background until Stop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() { s.done <- s.Run(ctx) }()
	s.logger.Info("scheduler started")
}

func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case err := <-done:
		s.logger.Info("scheduler stopped")
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) every(ctx context.Context, name string, interval time.Duration, job func(context.Context, time.Time) error) error {
	if interval <= 0 {
		s.logger.Warn("job disabled", slog.String("job", name))
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := job(ctx, s.clock.Now()); err != nil && ctx.Err() == nil {
				s.logger.Error("scheduled job failed",
					slog.String("job", name),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// SyncSaleWindows opens sales that have started and archives the ones that ended.
func (s *Scheduler) SyncSaleWindows(ctx context.Context, now time.Time) error {
	opened, openErr := s.saleWindow.OpenDueSales(ctx, now)
	if len(opened) > 0 {
		s.logger.Info("sales opened", slog.Int("count", len(opened)))
	}
	closed, closeErr := s.saleWindow.CloseEndedSales(ctx, now)
	if len(closed) > 0 {
		s.logger.Info("sales archived", slog.Int("count", len(closed)))
	}
	if openErr != nil {
		return openErr
	}
	return closeErr
}

// AdvanceCursors moves the pass cursor of every on-sale resource. One
// resource failing does not hold back the others.
func (s *Scheduler) AdvanceCursors(ctx context.Context, now time.Time) error {
	resources, err := s.saleWindow.OnSale(ctx, now)
	if err != nil {
		return err
	}

	var firstErr error
	for _, resourceID := range resources {
		adv, err := s.admission.AdvanceCursor(ctx, resourceID, now)
		if err != nil {
			s.logger.Warn("advance cursor failed",
				slog.String("resource_id", resourceID.String()),
				slog.String("error", err.Error()),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if adv.Admitted > 0 {
			s.logger.Debug("cursor advanced",
				slog.String("resource_id", resourceID.String()),
				slog.Int64("pass_cursor", adv.PassCursor),
				slog.Int64("admitted", adv.Admitted),
			)
		}
	}
	return firstErr
}

func (s *Scheduler) DrainIntake(ctx context.Context, now time.Time) error {
	report, err := s.intake.ProcessBatch(ctx, now)
	if report.Polled > 0 {
		queued, parked, retrying := s.intake.Backlog()
		s.logger.Info("intake batch processed",
			slog.Int("polled", report.Polled),
			slog.Int64("persisted", report.Persisted),
			slog.Int64("duplicates", report.Duplicates),
			slog.Int("invalid", report.Invalid),
			slog.Int("moved_to_retry", report.MovedToRetry),
			slog.Int("queued", queued),
			slog.Int("parked", parked),
			slog.Int("retrying", retrying),
		)
	}
	return err
}

func (s *Scheduler) DrainErrorQueue(ctx context.Context, now time.Time) error {
	report, err := s.intake.ProcessErrorQueue(ctx, now)
	if report.Drained > 0 {
		s.logger.Info("error queue drained",
			slog.Int("drained", report.Drained),
			slog.Int("recovered", report.Recovered),
			slog.Int("requeued", report.Requeued),
			slog.Int("dead_lettered", report.DeadLettered),
		)
	}
	return err
}

func (s *Scheduler) Sweep(ctx context.Context, now time.Time) error {
	result, err := s.reservations.Sweep(ctx, now)
	if result.Expired > 0 || result.GrantsExpired > 0 {
		s.logger.Info("reservations swept",
			slog.Int("expired", result.Expired),
			slog.Int("released", result.Released),
			slog.Int("failed", result.Failed),
			slog.Int64("grants_expired", result.GrantsExpired),
		)
	}
	return err
}

func (s *Scheduler) consumePayments(ctx context.Context) error {
	results := s.payments.Results()
	for {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-results:
			if !ok {
				s.logger.Info("payment results closed")
				return nil
			}
			s.HandlePayment(ctx, r)
		}
	}
}

// HandlePayment applies one payment result. Failures are logged; the
// reservation's expiry releases it if the result never lands.
func (s *Scheduler) HandlePayment(ctx context.Context, r payment.Result) {
	outcome, err := s.reservations.CompletePayment(ctx, r, s.clock.Now())
	if err != nil {
		s.logger.Error("payment result not applied",
			slog.String("session_id", r.SessionID.String()),
			slog.Bool("approved", r.Approved),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Info("payment result applied",
		slog.String("session_id", r.SessionID.String()),
		slog.String("outcome", string(outcome)),
	)
}
