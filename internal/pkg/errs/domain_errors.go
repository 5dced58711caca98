package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Sale errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrSaleNotOpen      = errors.New("sale not open")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationNotOwned = errors.New("reservation belongs to another buyer")
	ErrInvalidTTL          = errors.New("invalid reservation ttl")

	// Integrity errors, always alerted and never corrected silently
	ErrNegativeStock  = errors.New("negative stock observed")
	ErrStockIntegrity = errors.New("stock integrity violation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrStoreUnavailable        = errors.New("shared store unavailable")
	ErrPaymentRequestFailed    = errors.New("payment request failed")
)
