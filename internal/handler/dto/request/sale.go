package request

import (
	"time"

	"festival-flash-sale/internal/domain/payment"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	TTLSeconds *int `json:"ttlSeconds,omitempty" binding:"omitempty,min=1,max=3600"`
}

// TTL falls back to def when the buyer did not ask for a hold time.
func (r ReserveRequest) TTL(def time.Duration) time.Duration {
	if r.TTLSeconds == nil {
		return def
	}
	return time.Duration(*r.TTLSeconds) * time.Second
}

type PaymentCallbackRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	SessionID  uuid.UUID `json:"sessionId" binding:"required"`
	Approved   *bool     `json:"approved" binding:"required"`
	Reason     string    `json:"reason,omitempty" binding:"max=255"`
}

func (r PaymentCallbackRequest) ToDomain() payment.Result {
	return payment.Result{
		ResourceID: r.ResourceID,
		SessionID:  r.SessionID,
		Approved:   *r.Approved,
		Reason:     r.Reason,
	}
}

type SetStockRequest struct {
	Capacity *int64 `json:"capacity" binding:"required,min=0"`
}

type RollbackRequest struct {
	SessionIDs []uuid.UUID `json:"sessionIds" binding:"required,min=1,max=1000"`
}
