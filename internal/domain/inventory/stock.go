package inventory

import (
	"errors"
	"strconv"

	"festival-flash-sale/internal/domain/sale"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errors.New("capacity must not be negative")
	ErrRemainingOutside = errors.New("remaining count outside [0, capacity]")
)

// Stock is a read snapshot of one resource's ledger.
type Stock struct {
	ResourceID uuid.UUID
	Total      int64
	Remaining  int64
}

func NewStock(resourceID uuid.UUID, total, remaining int64) (Stock, error) {
	if total < 0 {
		return Stock{}, ErrInvalidCapacity
	}
	if remaining < 0 || remaining > total {
		return Stock{}, ErrRemainingOutside
	}
	return Stock{ResourceID: resourceID, Total: total, Remaining: remaining}, nil
}

func (s Stock) SoldOut() bool {
	return s.Remaining == 0
}

// UnitID is stable across reseeds, so the durable uniqueness on stock_unit_id
// survives a restart of the counter store.
func UnitID(resourceID uuid.UUID, ordinal int64) uuid.UUID {
	return uuid.NewSHA1(resourceID, []byte(strconv.FormatInt(ordinal, 10)))
}

// AvailableUnits lists the unit IDs of a resource that are not in taken.
func AvailableUnits(resourceID uuid.UUID, capacity int64, taken []uuid.UUID) ([]uuid.UUID, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	skip := make(map[uuid.UUID]struct{}, len(taken))
	for _, id := range taken {
		skip[id] = struct{}{}
	}
	units := make([]uuid.UUID, 0, capacity)
	for i := int64(0); i < capacity; i++ {
		id := UnitID(resourceID, i)
		if _, ok := skip[id]; ok {
			continue
		}
		units = append(units, id)
	}
	return units, nil
}

// Claim is the result of a check-and-decrement.
type Claim struct {
	Outcome sale.Outcome
	UnitID  uuid.UUID
}

func (c Claim) Succeeded() bool {
	return c.Outcome == sale.OutcomeReserved
}

// Restore is the result of returning a unit to the pool.
type Restore struct {
	Restored  bool
	Remaining int64
	Total     int64
}

// OverCapacity reports a restore that pushed the counter above the seeded total.
func (r Restore) OverCapacity() bool {
	return r.Restored && r.Remaining > r.Total
}
