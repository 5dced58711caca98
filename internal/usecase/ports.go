package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/domain/payment"
	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/domain/reservation"
	"festival-flash-sale/internal/domain/sale"

	"github.com/google/uuid"
)

// StockStore is the shared counter and unit pool of every resource.
type StockStore interface {
	Seed(ctx context.Context, resourceID uuid.UUID, capacity int64, units []uuid.UUID, overwrite bool) (bool, int64, error)
	Decrement(ctx context.Context, resourceID, sessionID uuid.UUID) (inventory.Claim, error)
	Restore(ctx context.Context, resourceID, unitID, sessionID uuid.UUID) (inventory.Restore, error)
	Count(ctx context.Context, resourceID uuid.UUID) (int64, error)
	Capacity(ctx context.Context, resourceID uuid.UUID) (int64, error)
	Resources(ctx context.Context) ([]uuid.UUID, error)
	Archive(ctx context.Context, resourceID uuid.UUID) (bool, error)
}

// WaitingRoomStore is the ranked waiting set, the pass cursor and the grants.
type WaitingRoomStore interface {
	Enqueue(ctx context.Context, resourceID, buyerID uuid.UUID, at time.Time) (admission.Position, error)
	Rank(ctx context.Context, resourceID, buyerID uuid.UUID) (admission.Position, error)
	Remove(ctx context.Context, resourceID, buyerID uuid.UUID) error
	ConsumeGrant(ctx context.Context, resourceID, buyerID uuid.UUID) error
	Admit(ctx context.Context, resourceID uuid.UUID, n int64, at time.Time) (admission.Eviction, error)
	ExpireGrants(ctx context.Context, resourceID uuid.UUID, cutoff time.Time) (int64, error)
	OutstandingGrants(ctx context.Context, resourceID uuid.UUID) (int64, error)
}

// ReservationStore holds reservations and the per-buyer slot that limits a
// buyer to one live reservation and one purchase per resource.
type ReservationStore interface {
	ClaimBuyer(ctx context.Context, resourceID, buyerID, sessionID uuid.UUID) (reservation.Standing, error)
	ReleaseBuyer(ctx context.Context, resourceID, buyerID, sessionID uuid.UUID) error
	Standing(ctx context.Context, resourceID, buyerID uuid.UUID) (reservation.Standing, error)
	Create(ctx context.Context, r *reservation.Reservation) (bool, error)
	Get(ctx context.Context, resourceID, sessionID uuid.UUID) (*reservation.Reservation, error)
	Transition(ctx context.Context, resourceID, sessionID uuid.UUID, to reservation.Status, from ...reservation.Status) (*reservation.Reservation, bool, error)
	Convert(ctx context.Context, resourceID, sessionID uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, resourceID, sessionID uuid.UUID) error
	Expired(ctx context.Context, resourceID uuid.UUID, now time.Time, limit int64) ([]*reservation.Reservation, error)
}

// CapacityCatalog is the durable catalog of sellable resources.
type CapacityCatalog interface {
	LoadResourceCapacity(ctx context.Context, resourceID uuid.UUID) (int64, error)
	PurchasedUnits(ctx context.Context, resourceID uuid.UUID) ([]uuid.UUID, error)
	ListOnSale(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	ListEnded(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type Alerter interface {
	Raise(ctx context.Context, a alert.Alert) error
}

type PaymentGateway interface {
	RequestPayment(ctx context.Context, req payment.Request) error
}

// PurchaseSubmitter hands a confirmed intent to the intake pipeline. It never
// drops the intent: QueueFull means it went to the error queue.
type PurchaseSubmitter interface {
	Submit(ctx context.Context, intent purchase.Intent) sale.Outcome
}
