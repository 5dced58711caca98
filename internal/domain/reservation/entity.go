package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTTL     = errors.New("reservation ttl must be positive")
	ErrMissingID      = errors.New("reservation requires resource, buyer, session and stock unit ids")
	ErrInvalidStatus  = errors.New("invalid reservation status")
	ErrNotOwnedByUser = errors.New("reservation belongs to another buyer")
)

// Reservation is a time-boxed exclusive claim on one stock unit.
type Reservation struct {
	resourceID  uuid.UUID
	buyerID     uuid.UUID
	sessionID   uuid.UUID
	stockUnitID uuid.UUID
	status      Status
	expiresAt   time.Time
	createdAt   time.Time
}

func NewReservation(resourceID, buyerID, sessionID, stockUnitID uuid.UUID, ttl time.Duration, now time.Time) (*Reservation, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if resourceID == uuid.Nil || buyerID == uuid.Nil || sessionID == uuid.Nil || stockUnitID == uuid.Nil {
		return nil, ErrMissingID
	}

	return &Reservation{
		resourceID:  resourceID,
		buyerID:     buyerID,
		sessionID:   sessionID,
		stockUnitID: stockUnitID,
		status:      StatusHeld,
		expiresAt:   now.Add(ttl),
		createdAt:   now,
	}, nil
}

func ReconstructReservation(
	resourceID, buyerID, sessionID, stockUnitID uuid.UUID,
	status Status,
	expiresAt, createdAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		resourceID:  resourceID,
		buyerID:     buyerID,
		sessionID:   sessionID,
		stockUnitID: stockUnitID,
		status:      status,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
	}, nil
}

// IsExpired is true from the expiry instant on.
func (r *Reservation) IsExpired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

func (r *Reservation) CheckOwner(buyerID uuid.UUID) error {
	if r.buyerID != buyerID {
		return ErrNotOwnedByUser
	}
	return nil
}

func (r *Reservation) ResourceID() uuid.UUID  { return r.resourceID }
func (r *Reservation) BuyerID() uuid.UUID     { return r.buyerID }
func (r *Reservation) SessionID() uuid.UUID   { return r.sessionID }
func (r *Reservation) StockUnitID() uuid.UUID { return r.stockUnitID }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) ExpiresAt() time.Time   { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
