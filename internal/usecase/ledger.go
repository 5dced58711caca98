package usecase

//go:generate mockgen -source=ledger.go -destination=../../tests/mock/usecase/ledger.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"

	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/pkg/errs"
	"festival-flash-sale/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type LedgerUseCase interface {
	CheckAndDecrement(ctx context.Context, resourceID, sessionID uuid.UUID) (inventory.Claim, error)
	Increment(ctx context.Context, resourceID, unitID, sessionID uuid.UUID) (inventory.Restore, error)
	SetCount(ctx context.Context, resourceID uuid.UUID, capacity int64) (inventory.Stock, error)
	GetCount(ctx context.Context, resourceID uuid.UUID) (inventory.Stock, error)
	OpenSale(ctx context.Context, resourceID uuid.UUID) (bool, error)
	Archive(ctx context.Context, resourceID uuid.UUID) (bool, error)
}

type ledgerUseCaseImpl struct {
	stock   StockStore
	catalog CapacityCatalog
	alerter Alerter
	logger  *slog.Logger
}

func NewLedgerUseCase(stock StockStore, catalog CapacityCatalog, alerter Alerter, logger *slog.Logger) LedgerUseCase {
	return &ledgerUseCaseImpl{
		stock:   stock,
		catalog: catalog,
		alerter: alerter,
		logger:  logger,
	}
}

// CheckAndDecrement claims one unit for sessionID. Sold out is an outcome,
// not an error.
func (l *ledgerUseCaseImpl) CheckAndDecrement(ctx context.Context, resourceID, sessionID uuid.UUID) (inventory.Claim, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ledger.CheckAndDecrement")
	defer span.End()
	span.SetAttributes(attribute.String("resource.id", resourceID.String()))

	claim, err := l.stock.Decrement(ctx, resourceID, sessionID)
	if err != nil {
		l.alertOnIntegrity(ctx, resourceID, "check-and-decrement", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "decrement failed")
		return inventory.Claim{}, err
	}
	span.SetAttributes(attribute.String("ledger.outcome", string(claim.Outcome)))
	return claim, nil
}

// Increment returns unitID to the pool. Restoring past the seeded capacity is
// reported, not clamped.
func (l *ledgerUseCaseImpl) Increment(ctx context.Context, resourceID, unitID, sessionID uuid.UUID) (inventory.Restore, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ledger.Increment")
	defer span.End()

	res, err := l.stock.Restore(ctx, resourceID, unitID, sessionID)
	if err != nil {
		span.RecordError(err)
		return inventory.Restore{}, err
	}
	if res.OverCapacity() {
		raiseAlert(ctx, l.alerter, l.logger, alert.Critical(alert.KindOverCapacity, resourceID,
			"restore pushed remaining count above capacity",
			map[string]any{"remaining": res.Remaining, "total": res.Total, "unit_id": unitID.String()},
		))
	}
	return res, nil
}

// SetCount reseeds capacity and the unit pool. Units already purchased or held
// by a live reservation are not returned to the pool.
func (l *ledgerUseCaseImpl) SetCount(ctx context.Context, resourceID uuid.UUID, capacity int64) (inventory.Stock, error) {
	if capacity < 0 {
		return inventory.Stock{}, errs.Wrap(errs.ErrDomainValidation, inventory.ErrInvalidCapacity.Error())
	}
	if _, err := l.seed(ctx, resourceID, capacity, true); err != nil {
		return inventory.Stock{}, err
	}
	return l.GetCount(ctx, resourceID)
}

// OpenSale seeds the ledger from the catalog unless it is already seeded.
func (l *ledgerUseCaseImpl) OpenSale(ctx context.Context, resourceID uuid.UUID) (bool, error) {
	capacity, err := l.catalog.LoadResourceCapacity(ctx, resourceID)
	if err != nil {
		return false, err
	}
	return l.seed(ctx, resourceID, capacity, false)
}

func (l *ledgerUseCaseImpl) seed(ctx context.Context, resourceID uuid.UUID, capacity int64, overwrite bool) (bool, error) {
	purchased, err := l.catalog.PurchasedUnits(ctx, resourceID)
	if err != nil {
		return false, err
	}
	units, err := inventory.AvailableUnits(resourceID, capacity, purchased)
	if err != nil {
		return false, errs.Wrap(errs.ErrDomainValidation, err.Error())
	}

	seeded, remaining, err := l.stock.Seed(ctx, resourceID, capacity, units, overwrite)
	if err != nil {
		return false, err
	}
	if seeded {
		l.logger.Info("ledger seeded",
			slog.String("resource_id", resourceID.String()),
			slog.Int64("capacity", capacity),
			slog.Int64("remaining", remaining),
		)
	}
	return seeded, nil
}

// GetCount reads the ledger. A count outside [0, capacity] is an integrity
// violation and is returned as an error.
func (l *ledgerUseCaseImpl) GetCount(ctx context.Context, resourceID uuid.UUID) (inventory.Stock, error) {
	remaining, err := l.stock.Count(ctx, resourceID)
	if err != nil {
		return inventory.Stock{}, err
	}
	total, err := l.stock.Capacity(ctx, resourceID)
	if err != nil {
		return inventory.Stock{}, err
	}

	stock, err := inventory.NewStock(resourceID, total, remaining)
	if err != nil {
		detail := map[string]any{"remaining": remaining, "total": total}
		if remaining < 0 {
			raiseAlert(ctx, l.alerter, l.logger, alert.Critical(alert.KindNegativeStock, resourceID, "negative remaining count observed", detail))
			return inventory.Stock{}, errs.Wrapf(errs.ErrNegativeStock, "resource %s remaining %d", resourceID, remaining)
		}
		raiseAlert(ctx, l.alerter, l.logger, alert.Critical(alert.KindOverCapacity, resourceID, "remaining count above capacity", detail))
		return inventory.Stock{}, errs.Wrapf(errs.ErrStockIntegrity, "resource %s remaining %d of %d", resourceID, remaining, total)
	}
	return stock, nil
}

func (l *ledgerUseCaseImpl) Archive(ctx context.Context, resourceID uuid.UUID) (bool, error) {
	archived, err := l.stock.Archive(ctx, resourceID)
	if err != nil {
		return false, err
	}
	if archived {
		l.logger.Info("ledger archived", slog.String("resource_id", resourceID.String()))
	}
	return archived, nil
}

func (l *ledgerUseCaseImpl) alertOnIntegrity(ctx context.Context, resourceID uuid.UUID, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrNegativeStock):
		raiseAlert(ctx, l.alerter, l.logger, alert.Critical(alert.KindNegativeStock, resourceID,
			"negative remaining count observed", map[string]any{"op": op, "error": err.Error()}))
	case errors.Is(err, errs.ErrStockIntegrity):
		raiseAlert(ctx, l.alerter, l.logger, alert.Critical(alert.KindStockIntegrity, resourceID,
			"stock integrity violation", map[string]any{"op": op, "error": err.Error()}))
	}
}
