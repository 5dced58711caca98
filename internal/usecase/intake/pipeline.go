package intake

//go:generate mockgen -source=pipeline.go -destination=../../../tests/mock/intake/pipeline.go -package=intakemock

import (
	"context"
	"log/slog"
	"time"

	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// PurchaseRepository writes purchases at most once per stock unit and
// returns the number of rows actually inserted.
type PurchaseRepository interface {
	SaveBatch(ctx context.Context, purchases []purchase.Purchase) (int64, error)
}

type ResourceValidator interface {
	ExistingResourceIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type DeadLetterRecorder interface {
	Record(ctx context.Context, letter purchase.DeadLetter) error
}

type Alerter interface {
	Raise(ctx context.Context, a alert.Alert) error
}

type BatchReport struct {
	Polled       int
	Persisted    int64
	Duplicates   int64
	Invalid      int
	MovedToRetry int
}

type DrainReport struct {
	Drained      int
	Recovered    int
	Requeued     int
	DeadLettered int
}

// Processor moves purchase intents from the intake queue into durable
// storage, with an error queue and per-item retries behind it.
type Processor struct {
	queue       *Queue
	errors      *ErrorQueue
	retries     *RetryBook
	repo        PurchaseRepository
	validator   ResourceValidator
	deadLetters DeadLetterRecorder
	alerter     Alerter
	cfg         config.SaleConfig
	logger      *slog.Logger
}

func NewProcessor(
	repo PurchaseRepository,
	validator ResourceValidator,
	deadLetters DeadLetterRecorder,
	alerter Alerter,
	cfg config.SaleConfig,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		queue: NewQueue(cfg.IntakeCapacity, OfferPolicy{
			MaxRetries:  cfg.OfferMaxRetries,
			InitialWait: cfg.OfferInitialWait,
			MaxWait:     cfg.OfferMaxWait,
		}),
		errors:      NewErrorQueue(),
		retries:     NewRetryBook(),
		repo:        repo,
		validator:   validator,
		deadLetters: deadLetters,
		alerter:     alerter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Submit offers the intent to the intake queue. On QueueFull the intent is
// parked in the error queue, never dropped.
func (p *Processor) Submit(ctx context.Context, intent purchase.Intent) sale.Outcome {
	outcome := p.queue.Offer(ctx, intent)
	if outcome == sale.OutcomeQueueFull {
		p.errors.Push(intent)
		p.logger.Warn("intake queue full, intent parked in error queue",
			slog.String("stock_unit_id", intent.StockUnitID.String()),
			slog.Int("error_queue", p.errors.Len()),
		)
	}
	return outcome
}

// BatchSize is the backlog clamped to [MinBatchSize, MaxBatchSize].
func (p *Processor) BatchSize() int {
	return min(max(p.queue.Len(), p.cfg.MinBatchSize), p.cfg.MaxBatchSize)
}

// ProcessBatch persists one batch from the intake queue with a single
// multi-row write. Items whose resource no longer exists are dead-lettered
// one by one; if the write fails, every remaining item goes to the error queue.
func (p *Processor) ProcessBatch(ctx context.Context, now time.Time) (BatchReport, error) {
	items := p.queue.PollBatch(p.BatchSize())
	if len(items) == 0 {
		return BatchReport{}, nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "intake.ProcessBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("intake.batch_size", len(items)))

	report := BatchReport{Polled: len(items)}

	valid, invalid, err := p.partition(ctx, items)
	if err != nil {
		p.errors.Push(items...)
		report.MovedToRetry = len(items)
		p.logger.Error("intake: validation failed, batch moved to error queue",
			slog.Int("items", len(items)),
			slog.String("error", err.Error()),
		)
		span.RecordError(err)
		return report, nil
	}

	for _, item := range invalid {
		p.deadLetter(ctx, item, 0, purchase.ReasonValidation, "resource no longer exists", now)
	}
	report.Invalid = len(invalid)
	if len(valid) == 0 {
		return report, nil
	}

	purchases := make([]purchase.Purchase, 0, len(valid))
	for _, item := range valid {
		purchases = append(purchases, purchase.FromIntent(item, now))
	}

	inserted, err := p.repo.SaveBatch(ctx, purchases)
	if err != nil {
		p.errors.Push(valid...)
		report.MovedToRetry = len(valid)
		p.logger.Warn("intake: batch write failed, items moved to error queue",
			slog.Int("items", len(valid)),
			slog.String("error", err.Error()),
		)
		span.RecordError(err)
		return report, nil
	}

	report.Persisted = inserted
	report.Duplicates = int64(len(valid)) - inserted
	if report.Duplicates > 0 {
		p.logger.Info("intake: duplicate purchases skipped", slog.Int64("duplicates", report.Duplicates))
	}
	return report, nil
}

// ProcessErrorQueue retries up to ErrorDrainLimit parked items one at a
// time. An item that fails more than RetryCeiling times is dead-lettered
// exactly once and an operator alert is raised. The attempt count is cleared
// on success and on dead-lettering.
func (p *Processor) ProcessErrorQueue(ctx context.Context, now time.Time) (DrainReport, error) {
	items := p.errors.Drain(p.cfg.ErrorDrainLimit)
	if len(items) == 0 {
		return DrainReport{}, nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "intake.ProcessErrorQueue")
	defer span.End()

	report := DrainReport{Drained: len(items)}
	for _, item := range items {
		_, err := p.repo.SaveBatch(ctx, []purchase.Purchase{purchase.FromIntent(item, now)})
		if err == nil {
			p.retries.Clear(item.Key())
			report.Recovered++
			continue
		}

		attempts := p.retries.Fail(item.Key())
		if attempts > p.cfg.RetryCeiling {
			p.deadLetter(ctx, item, attempts, purchase.ReasonRetriesExceeded, err.Error(), now)
			p.retries.Clear(item.Key())
			raiseAlert(ctx, p.alerter, p.logger, alert.Critical(alert.KindDeadLetter, item.ResourceID,
				"purchase intent exhausted its retries",
				map[string]any{"stock_unit_id": item.StockUnitID.String(), "attempts": attempts, "error": err.Error()},
			))
			report.DeadLettered++
			continue
		}

		p.errors.Push(item)
		report.Requeued++
	}

	span.SetAttributes(
		attribute.Int("intake.recovered", report.Recovered),
		attribute.Int("intake.dead_lettered", report.DeadLettered),
	)
	return report, nil
}

// Backlog reports the sizes of the intake queue, the error queue and the
// retry book.
func (p *Processor) Backlog() (queued, parked, retrying int) {
	return p.queue.Len(), p.errors.Len(), p.retries.Len()
}

func (p *Processor) partition(ctx context.Context, items []purchase.Intent) (valid, invalid []purchase.Intent, err error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ResourceID]; ok {
			continue
		}
		seen[item.ResourceID] = struct{}{}
		ids = append(ids, item.ResourceID)
	}

	existing, err := p.validator.ExistingResourceIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	for _, item := range items {
		if _, ok := known[item.ResourceID]; ok {
			valid = append(valid, item)
		} else {
			invalid = append(invalid, item)
		}
	}
	return valid, invalid, nil
}

func (p *Processor) deadLetter(ctx context.Context, item purchase.Intent, attempts int, reason purchase.FailureReason, detail string, now time.Time) {
	letter := purchase.DeadLetter{
		Intent:   item,
		Attempts: attempts,
		Reason:   reason,
		Detail:   detail,
		FailedAt: now,
	}
	if err := p.deadLetters.Record(ctx, letter); err != nil {
		raiseAlert(ctx, p.alerter, p.logger, alert.Critical(alert.KindDeadLetterLost, item.ResourceID,
			"failed to record dead letter",
			map[string]any{"stock_unit_id": item.StockUnitID.String(), "reason": string(reason), "error": err.Error()},
		))
		return
	}
	p.logger.Warn("purchase intent dead-lettered",
		slog.String("stock_unit_id", item.StockUnitID.String()),
		slog.String("reason", string(reason)),
		slog.Int("attempts", attempts),
	)
}

func raiseAlert(ctx context.Context, alerter Alerter, logger *slog.Logger, a alert.Alert) {
	logger.Error(a.Message,
		slog.String("alert_kind", string(a.Kind)),
		slog.String("resource_id", a.ResourceID.String()),
	)
	if err := alerter.Raise(ctx, a); err != nil {
		logger.Error("failed to publish alert", slog.String("alert_kind", string(a.Kind)), slog.String("error", err.Error()))
	}
}
