package usecase

//go:generate mockgen -source=compensation.go -destination=../../tests/mock/usecase/compensation.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"

	"festival-flash-sale/internal/domain/reservation"
	"festival-flash-sale/internal/pkg/errs"
	"festival-flash-sale/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CompensationUseCase interface {
	ReleaseReservation(ctx context.Context, resourceID, sessionID uuid.UUID) bool
	ReleaseMany(ctx context.Context, resourceID uuid.UUID, sessionIDs []uuid.UUID) RollbackResult
}

// RollbackResult lists the sessions released and the ones left for the next sweep.
type RollbackResult struct {
	Released []uuid.UUID
	Failed   []uuid.UUID
}

type compensationUseCaseImpl struct {
	reservations ReservationStore
	ledger       LedgerUseCase
	logger       *slog.Logger
}

func NewCompensationUseCase(reservations ReservationStore, ledger LedgerUseCase, logger *slog.Logger) CompensationUseCase {
	return &compensationUseCaseImpl{
		reservations: reservations,
		ledger:       ledger,
		logger:       logger,
	}
}

// ReleaseReservation returns the reserved unit to the ledger and then clears
// the reservation. It never returns an error: failures are logged, the record
// is kept, and the next sweep retries. A missing record counts as released.
func (c *compensationUseCaseImpl) ReleaseReservation(ctx context.Context, resourceID, sessionID uuid.UUID) bool {
	ctx, span := telemetry.Tracer().Start(ctx, "compensation.ReleaseReservation")
	defer span.End()
	span.SetAttributes(
		attribute.String("resource.id", resourceID.String()),
		attribute.String("session.id", sessionID.String()),
	)

	log := c.logger.With(
		slog.String("resource_id", resourceID.String()),
		slog.String("session_id", sessionID.String()),
	)

	// Claiming the record first keeps a concurrent payment approval from
	// converting a unit that is being returned.
	r, claimed, err := c.reservations.Transition(ctx, resourceID, sessionID,
		reservation.StatusReleasing,
		reservation.StatusHeld, reservation.StatusPaying, reservation.StatusReleasing,
	)
	if errors.Is(err, errs.ErrReservationNotFound) {
		log.Debug("reservation already cleared")
		return true
	}
	if err != nil {
		log.Error("compensation: failed to claim reservation", slog.String("error", err.Error()))
		return false
	}
	if !claimed {
		log.Error("compensation: reservation in unexpected status", slog.String("status", r.Status().String()))
		return false
	}

	restore, err := c.ledger.Increment(ctx, resourceID, r.StockUnitID(), sessionID)
	if err != nil {
		log.Error("compensation: failed to restore stock",
			slog.String("stock_unit_id", r.StockUnitID().String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	if !restore.Restored {
		log.Warn("compensation: unit no longer held by session",
			slog.String("stock_unit_id", r.StockUnitID().String()),
		)
	}

	if err := c.reservations.Delete(ctx, resourceID, sessionID); err != nil {
		log.Error("compensation: failed to clear reservation", slog.String("error", err.Error()))
		return false
	}

	log.Info("reservation released",
		slog.String("stock_unit_id", r.StockUnitID().String()),
		slog.Int64("remaining", restore.Remaining),
	)
	return true
}

func (c *compensationUseCaseImpl) ReleaseMany(ctx context.Context, resourceID uuid.UUID, sessionIDs []uuid.UUID) RollbackResult {
	result := RollbackResult{
		Released: make([]uuid.UUID, 0, len(sessionIDs)),
		Failed:   []uuid.UUID{},
	}
	for _, id := range sessionIDs {
		if c.ReleaseReservation(ctx, resourceID, id) {
			result.Released = append(result.Released, id)
		} else {
			result.Failed = append(result.Failed, id)
		}
	}
	return result
}
