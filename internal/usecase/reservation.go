package usecase

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/payment"
	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/domain/reservation"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/errs"
	"festival-flash-sale/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ReservationUseCase interface {
	Reserve(ctx context.Context, resourceID, buyerID uuid.UUID, ttl time.Duration, now time.Time) (ReserveResult, error)
	Confirm(ctx context.Context, resourceID, sessionID, buyerID uuid.UUID, now time.Time) (ConfirmResult, error)
	CompletePayment(ctx context.Context, result payment.Result, now time.Time) (sale.Outcome, error)
	Sweep(ctx context.Context, now time.Time) (SweepResult, error)
}

type ReserveResult struct {
	Outcome     sale.Outcome
	Reservation *reservation.Reservation
	Position    admission.Position
}

type ConfirmResult struct {
	Outcome     sale.Outcome
	Reservation *reservation.Reservation
}

type SweepResult struct {
	Resources     int
	Expired       int
	Released      int
	Failed        int
	GrantsExpired int64
}

type reservationUseCaseImpl struct {
	stock        StockStore
	waiting      WaitingRoomStore
	reservations ReservationStore
	ledger       LedgerUseCase
	compensation CompensationUseCase
	gateway      PaymentGateway
	submitter    PurchaseSubmitter
	alerter      Alerter
	cfg          config.SaleConfig
	logger       *slog.Logger
}

func NewReservationUseCase(
	stock StockStore,
	waiting WaitingRoomStore,
	reservations ReservationStore,
	ledger LedgerUseCase,
	compensation CompensationUseCase,
	gateway PaymentGateway,
	submitter PurchaseSubmitter,
	alerter Alerter,
	cfg config.SaleConfig,
	logger *slog.Logger,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		stock:        stock,
		waiting:      waiting,
		reservations: reservations,
		ledger:       ledger,
		compensation: compensation,
		gateway:      gateway,
		submitter:    submitter,
		alerter:      alerter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Reserve claims one unit for an admitted buyer and holds it until now+ttl.
func (u *reservationUseCaseImpl) Reserve(ctx context.Context, resourceID, buyerID uuid.UUID, ttl time.Duration, now time.Time) (ReserveResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.Reserve")
	defer span.End()
	span.SetAttributes(attribute.String("resource.id", resourceID.String()))

	result, err := u.reserve(ctx, resourceID, buyerID, ttl, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reserve failed")
		return ReserveResult{}, err
	}
	span.SetAttributes(attribute.String("reservation.outcome", string(result.Outcome)))
	return result, nil
}

func (u *reservationUseCaseImpl) reserve(ctx context.Context, resourceID, buyerID uuid.UUID, ttl time.Duration, now time.Time) (ReserveResult, error) {
	if ttl <= 0 {
		return ReserveResult{}, errs.Wrapf(errs.ErrInvalidTTL, "ttl %s", ttl)
	}

	pos, err := u.waiting.Rank(ctx, resourceID, buyerID)
	if err != nil {
		return ReserveResult{}, err
	}
	if !pos.Admitted() {
		standing, err := u.reservations.Standing(ctx, resourceID, buyerID)
		if err != nil {
			return ReserveResult{}, err
		}
		if o, taken := standingOutcome(standing); taken {
			return ReserveResult{Outcome: o, Position: pos}, nil
		}
		return ReserveResult{Outcome: sale.OutcomeNotAdmitted, Position: pos}, nil
	}

	// The buyer slot is taken before the decrement so a duplicate request
	// never holds a unit, not even briefly.
	sessionID := uuid.New()
	standing, err := u.reservations.ClaimBuyer(ctx, resourceID, buyerID, sessionID)
	if err != nil {
		return ReserveResult{}, err
	}
	if o, taken := standingOutcome(standing); taken {
		u.consumeGrant(ctx, resourceID, buyerID)
		return ReserveResult{Outcome: o, Position: pos}, nil
	}

	claim, err := u.ledger.CheckAndDecrement(ctx, resourceID, sessionID)
	if err != nil {
		u.releaseBuyer(ctx, resourceID, buyerID, sessionID)
		return ReserveResult{}, err
	}
	if !claim.Succeeded() {
		u.releaseBuyer(ctx, resourceID, buyerID, sessionID)
		u.consumeGrant(ctx, resourceID, buyerID)
		return ReserveResult{Outcome: claim.Outcome, Position: pos}, nil
	}

	r, err := reservation.NewReservation(resourceID, buyerID, sessionID, claim.UnitID, ttl, now)
	if err != nil {
		u.abandon(ctx, resourceID, buyerID, claim.UnitID, sessionID)
		return ReserveResult{}, errs.Wrap(errs.ErrDomainValidation, err.Error())
	}

	created, err := u.reservations.Create(ctx, r)
	if err != nil {
		u.abandon(ctx, resourceID, buyerID, claim.UnitID, sessionID)
		return ReserveResult{}, err
	}
	if !created {
		u.abandon(ctx, resourceID, buyerID, claim.UnitID, sessionID)
		return ReserveResult{}, errs.Wrapf(errs.ErrStockIntegrity, "buyer slot of session %s taken over", sessionID)
	}

	u.consumeGrant(ctx, resourceID, buyerID)

	u.logger.Info("reservation held",
		slog.String("resource_id", resourceID.String()),
		slog.String("session_id", sessionID.String()),
		slog.String("stock_unit_id", claim.UnitID.String()),
		slog.Time("expires_at", r.ExpiresAt()),
	)
	return ReserveResult{Outcome: sale.OutcomeReserved, Reservation: r, Position: pos}, nil
}

func standingOutcome(s reservation.Standing) (sale.Outcome, bool) {
	switch s {
	case reservation.StandingReserved:
		return sale.OutcomeAlreadyReserved, true
	case reservation.StandingPurchased:
		return sale.OutcomeAlreadyPurchased, true
	default:
		return "", false
	}
}

// Confirm moves a held reservation to paying and requests payment. Calling it
// again while payment is pending does not request a second payment.
func (u *reservationUseCaseImpl) Confirm(ctx context.Context, resourceID, sessionID, buyerID uuid.UUID, now time.Time) (ConfirmResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.Confirm")
	defer span.End()

	r, err := u.reservations.Get(ctx, resourceID, sessionID)
	if errors.Is(err, errs.ErrReservationNotFound) {
		return ConfirmResult{Outcome: sale.OutcomeExpired}, nil
	}
	if err != nil {
		return ConfirmResult{}, err
	}
	if err := r.CheckOwner(buyerID); err != nil {
		return ConfirmResult{}, errs.Wrap(errs.ErrReservationNotOwned, err.Error())
	}
	if r.IsExpired(now) {
		u.compensation.ReleaseReservation(ctx, resourceID, sessionID)
		return ConfirmResult{Outcome: sale.OutcomeExpired}, nil
	}

	r, moved, err := u.reservations.Transition(ctx, resourceID, sessionID, reservation.StatusPaying, reservation.StatusHeld)
	if errors.Is(err, errs.ErrReservationNotFound) {
		return ConfirmResult{Outcome: sale.OutcomeExpired}, nil
	}
	if err != nil {
		return ConfirmResult{}, err
	}
	if !moved {
		if r.Status() == reservation.StatusPaying {
			return ConfirmResult{Outcome: sale.OutcomePaymentPending, Reservation: r}, nil
		}
		return ConfirmResult{Outcome: sale.OutcomeExpired}, nil
	}

	req := payment.Request{
		ResourceID:  resourceID,
		SessionID:   sessionID,
		BuyerID:     r.BuyerID(),
		StockUnitID: r.StockUnitID(),
	}
	if err := u.gateway.RequestPayment(ctx, req); err != nil {
		if _, _, rerr := u.reservations.Transition(ctx, resourceID, sessionID, reservation.StatusHeld, reservation.StatusPaying); rerr != nil {
			u.logger.Error("failed to revert reservation after payment request failure",
				slog.String("session_id", sessionID.String()),
				slog.String("error", rerr.Error()),
			)
		}
		span.RecordError(err)
		return ConfirmResult{}, errs.Wrap(errs.ErrPaymentRequestFailed, err.Error())
	}

	return ConfirmResult{Outcome: sale.OutcomePaymentPending, Reservation: r}, nil
}

// CompletePayment applies the payment collaborator's answer. Approval converts
// the reservation and submits a purchase intent; a decline releases it.
func (u *reservationUseCaseImpl) CompletePayment(ctx context.Context, result payment.Result, now time.Time) (sale.Outcome, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.CompletePayment")
	defer span.End()
	span.SetAttributes(attribute.Bool("payment.approved", result.Approved))

	log := u.logger.With(
		slog.String("resource_id", result.ResourceID.String()),
		slog.String("session_id", result.SessionID.String()),
	)

	if !result.Approved {
		if !u.compensation.ReleaseReservation(ctx, result.ResourceID, result.SessionID) {
			log.Warn("declined reservation left for the next sweep", slog.String("reason", result.Reason))
		}
		return sale.OutcomeDeclined, nil
	}

	r, err := u.reservations.Convert(ctx, result.ResourceID, result.SessionID)
	if err != nil {
		return "", err
	}
	if r == nil {
		log.Warn("payment approved for a reservation that was already released")
		return sale.OutcomeExpired, nil
	}

	intent, err := purchase.NewIntent(r.BuyerID(), r.ResourceID(), r.StockUnitID(), now)
	if err != nil {
		return "", errs.Wrap(errs.ErrDomainValidation, err.Error())
	}
	outcome := u.submitter.Submit(ctx, intent)

	log.Info("purchase confirmed",
		slog.String("stock_unit_id", r.StockUnitID().String()),
		slog.String("intake", string(outcome)),
	)
	return sale.OutcomeConfirmed, nil
}

// Sweep releases every reservation expired at now, across all seeded
// resources, and drops stale admission grants.
func (u *reservationUseCaseImpl) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.Sweep")
	defer span.End()

	resources, err := u.stock.Resources(ctx)
	if err != nil {
		span.RecordError(err)
		return SweepResult{}, err
	}

	var result SweepResult
	for _, resourceID := range resources {
		result.Resources++
		log := u.logger.With(slog.String("resource_id", resourceID.String()))

		n, err := u.waiting.ExpireGrants(ctx, resourceID, now.Add(-u.cfg.GrantTTL))
		if err != nil {
			log.Error("sweep: failed to expire grants", slog.String("error", err.Error()))
		}
		result.GrantsExpired += n

		expired, err := u.reservations.Expired(ctx, resourceID, now, u.cfg.SweepLimit)
		if err != nil {
			log.Error("sweep: failed to list expired reservations", slog.String("error", err.Error()))
			continue
		}
		for _, r := range expired {
			result.Expired++
			if u.compensation.ReleaseReservation(ctx, resourceID, r.SessionID()) {
				result.Released++
				continue
			}
			result.Failed++
			if overdue := now.Sub(r.ExpiresAt()); overdue > u.stallAfter() {
				raiseAlert(ctx, u.alerter, u.logger, alert.Critical(alert.KindCompensationStall, resourceID,
					"expired reservation could not be released",
					map[string]any{"session_id": r.SessionID().String(), "overdue": overdue.String()},
				))
			}
		}
	}

	span.SetAttributes(
		attribute.Int("sweep.released", result.Released),
		attribute.Int("sweep.failed", result.Failed),
	)
	return result, nil
}

func (u *reservationUseCaseImpl) stallAfter() time.Duration {
	return 10 * u.cfg.SweepInterval
}

func (u *reservationUseCaseImpl) consumeGrant(ctx context.Context, resourceID, buyerID uuid.UUID) {
	if err := u.waiting.ConsumeGrant(ctx, resourceID, buyerID); err != nil {
		u.logger.Warn("failed to consume admission grant",
			slog.String("resource_id", resourceID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (u *reservationUseCaseImpl) releaseBuyer(ctx context.Context, resourceID, buyerID, sessionID uuid.UUID) {
	if err := u.reservations.ReleaseBuyer(ctx, resourceID, buyerID, sessionID); err != nil {
		u.logger.Error("failed to release buyer slot",
			slog.String("resource_id", resourceID.String()),
			slog.String("session_id", sessionID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// abandon undoes a claim whose reservation was never recorded.
func (u *reservationUseCaseImpl) abandon(ctx context.Context, resourceID, buyerID, unitID, sessionID uuid.UUID) {
	u.returnUnit(ctx, resourceID, unitID, sessionID)
	u.releaseBuyer(ctx, resourceID, buyerID, sessionID)
}

// returnUnit undoes a decrement whose reservation was never recorded. No
// sweep can find such a unit, so a failure is alerted.
func (u *reservationUseCaseImpl) returnUnit(ctx context.Context, resourceID, unitID, sessionID uuid.UUID) {
	if _, err := u.ledger.Increment(ctx, resourceID, unitID, sessionID); err != nil {
		raiseAlert(ctx, u.alerter, u.logger, alert.Critical(alert.KindCompensationStall, resourceID,
			"failed to return unit of an aborted reservation",
			map[string]any{"stock_unit_id": unitID.String(), "session_id": sessionID.String(), "error": err.Error()},
		))
	}
}
