package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrIncompleteIntent = errors.New("purchase intent requires buyer, resource and stock unit")

// Intent is placed on the intake queue once a reservation converts. It is a
// value type and never mutated after creation.
type Intent struct {
	BuyerID     uuid.UUID
	ResourceID  uuid.UUID
	StockUnitID uuid.UUID
	RequestedAt time.Time
}

func NewIntent(buyerID, resourceID, stockUnitID uuid.UUID, requestedAt time.Time) (Intent, error) {
	if buyerID == uuid.Nil || resourceID == uuid.Nil || stockUnitID == uuid.Nil {
		return Intent{}, ErrIncompleteIntent
	}
	return Intent{
		BuyerID:     buyerID,
		ResourceID:  resourceID,
		StockUnitID: stockUnitID,
		RequestedAt: requestedAt,
	}, nil
}

// Key identifies an intent across retries; one durable purchase per stock unit.
func (i Intent) Key() uuid.UUID {
	return i.StockUnitID
}

// Purchase is the durable row written for a processed intent.
type Purchase struct {
	ID          uuid.UUID
	BuyerID     uuid.UUID
	ResourceID  uuid.UUID
	StockUnitID uuid.UUID
	RequestedAt time.Time
	PurchasedAt time.Time
}

func FromIntent(intent Intent, now time.Time) Purchase {
	return Purchase{
		ID:          uuid.New(),
		BuyerID:     intent.BuyerID,
		ResourceID:  intent.ResourceID,
		StockUnitID: intent.StockUnitID,
		RequestedAt: intent.RequestedAt,
		PurchasedAt: now,
	}
}

type FailureReason string

const (
	ReasonValidation      FailureReason = "validation"
	ReasonRetriesExceeded FailureReason = "retries_exceeded"
)

// DeadLetter is the permanent-failure record of an intent.
type DeadLetter struct {
	Intent   Intent
	Attempts int
	Reason   FailureReason
	Detail   string
	FailedAt time.Time
}
