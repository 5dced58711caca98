package usecase

//go:generate mockgen -source=admission.go -destination=../../tests/mock/usecase/admission.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type AdmissionUseCase interface {
	Enqueue(ctx context.Context, resourceID, buyerID uuid.UUID, now time.Time) (admission.Position, error)
	Dequeue(ctx context.Context, resourceID, buyerID uuid.UUID) error
	Rank(ctx context.Context, resourceID, buyerID uuid.UUID) (admission.Position, error)
	AdvanceCursor(ctx context.Context, resourceID uuid.UUID, now time.Time) (admission.Advance, error)
	IsAdmitted(ctx context.Context, resourceID, buyerID uuid.UUID) (bool, error)
}

type admissionUseCaseImpl struct {
	waiting  WaitingRoomStore
	ledger   LedgerUseCase
	grantTTL time.Duration
	logger   *slog.Logger
}

func NewAdmissionUseCase(waiting WaitingRoomStore, ledger LedgerUseCase, cfg config.SaleConfig, logger *slog.Logger) AdmissionUseCase {
	return &admissionUseCaseImpl{
		waiting:  waiting,
		ledger:   ledger,
		grantTTL: cfg.GrantTTL,
		logger:   logger,
	}
}

// Enqueue adds the buyer or moves an existing entry to the back. A buyer who
// already holds a grant is reported admitted and left untouched; one holding
// a reservation or a purchase is turned away.
func (a *admissionUseCaseImpl) Enqueue(ctx context.Context, resourceID, buyerID uuid.UUID, now time.Time) (admission.Position, error) {
	return a.waiting.Enqueue(ctx, resourceID, buyerID, now)
}

func (a *admissionUseCaseImpl) Dequeue(ctx context.Context, resourceID, buyerID uuid.UUID) error {
	return a.waiting.Remove(ctx, resourceID, buyerID)
}

func (a *admissionUseCaseImpl) Rank(ctx context.Context, resourceID, buyerID uuid.UUID) (admission.Position, error) {
	return a.waiting.Rank(ctx, resourceID, buyerID)
}

func (a *admissionUseCaseImpl) IsAdmitted(ctx context.Context, resourceID, buyerID uuid.UUID) (bool, error) {
	pos, err := a.waiting.Rank(ctx, resourceID, buyerID)
	if err != nil {
		return false, err
	}
	return pos.Admitted(), nil
}

// AdvanceCursor lets max(0, remaining - outstanding grants) more buyers
// through. Grants older than the grant TTL are dropped first so abandoned
// admissions stop holding back the queue. Every step recomputes from current
// counts, so a failed run is corrected by the next one.
func (a *admissionUseCaseImpl) AdvanceCursor(ctx context.Context, resourceID uuid.UUID, now time.Time) (admission.Advance, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "admission.AdvanceCursor")
	defer span.End()
	span.SetAttributes(attribute.String("resource.id", resourceID.String()))

	result, err := a.advance(ctx, resourceID, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "advance failed")
		return admission.Advance{}, err
	}
	span.SetAttributes(
		attribute.Int64("admission.admitted", result.Admitted),
		attribute.Int64("admission.cursor", result.PassCursor),
	)
	return result, nil
}

func (a *admissionUseCaseImpl) advance(ctx context.Context, resourceID uuid.UUID, now time.Time) (admission.Advance, error) {
	expired, err := a.waiting.ExpireGrants(ctx, resourceID, now.Add(-a.grantTTL))
	if err != nil {
		return admission.Advance{}, err
	}

	stock, err := a.ledger.GetCount(ctx, resourceID)
	if err != nil {
		return admission.Advance{}, err
	}
	outstanding, err := a.waiting.OutstandingGrants(ctx, resourceID)
	if err != nil {
		return admission.Advance{}, err
	}

	admittable := admission.Admittable(stock.Remaining, outstanding)
	ev, err := a.waiting.Admit(ctx, resourceID, admittable, now)
	if err != nil {
		return admission.Advance{}, err
	}

	if ev.Overrun() {
		a.logger.Error("pass cursor beyond enqueued entries",
			slog.String("resource_id", resourceID.String()),
			slog.Int64("cursor", ev.PassCursor),
			slog.Int64("enqueued", ev.Enqueued),
		)
	}
	if ev.Admitted > 0 || expired > 0 {
		a.logger.Debug("pass cursor advanced",
			slog.String("resource_id", resourceID.String()),
			slog.Int64("admittable", admittable),
			slog.Int64("admitted", ev.Admitted),
			slog.Int64("cursor", ev.PassCursor),
			slog.Int64("waiting", ev.Waiting),
			slog.Int64("grants_expired", expired),
		)
	}
	return admission.Advance{
		Admittable: admittable,
		Admitted:   ev.Admitted,
		PassCursor: ev.PassCursor,
		Waiting:    ev.Waiting,
		Expired:    expired,
	}, nil
}
