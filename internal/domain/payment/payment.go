package payment

import "github.com/google/uuid"

// Request is the reservation reference handed to the payment collaborator.
type Request struct {
	ResourceID  uuid.UUID
	SessionID   uuid.UUID
	BuyerID     uuid.UUID
	StockUnitID uuid.UUID
}

// Result is the asynchronous answer of the payment collaborator.
type Result struct {
	ResourceID uuid.UUID
	SessionID  uuid.UUID
	Approved   bool
	Reason     string
}
