package api

import (
	"errors"
	"net/http"
	"time"

	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/handler/middleware"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingBuyer = errors.New("buyer missing from context")
	errInvalidID    = errors.New("invalid id")
)

// storeRetryAfter is the hint sent while the shared store is unreachable.
const storeRetryAfter = 2 * time.Second

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// First match wins.
var useCaseErrors = []errorMapping{
	{errs.ErrResourceNotFound, http.StatusNotFound, httperr.CodeNotFound, "Resource not found"},
	{errs.ErrSaleNotOpen, http.StatusConflict, httperr.CodeSaleNotOpen, "Sale not open"},
	{errs.ErrReservationNotFound, http.StatusNotFound, httperr.CodeReservationGone, "Reservation not found"},
	{errs.ErrReservationNotOwned, http.StatusForbidden, httperr.CodeNotOwned, "Reservation belongs to another buyer"},
	{errs.ErrInvalidTTL, http.StatusBadRequest, httperr.CodeBadRequest, "Invalid reservation ttl"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, httperr.CodeUnprocessable, "Domain validation failed"},
	{errs.ErrPaymentRequestFailed, http.StatusBadGateway, httperr.CodeUpstream, "Payment request failed"},
}

// abortWithUseCaseError maps usecase errors to responses. Expected outcomes
// never reach here.
func abortWithUseCaseError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrStoreUnavailable) {
		httperr.AbortRetryable(c, http.StatusServiceUnavailable, storeRetryAfter, err,
			httperr.CodeUnavailable, "Service temporarily unavailable")
		return
	}
	for _, m := range useCaseErrors {
		if errors.Is(err, m.target) {
			httperr.Abort(c, httperr.NewResponse(m.status, m.code, m.msg), err)
			return
		}
	}
	httperr.Abort(c, httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"), err)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidID, err), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func requireBuyer(c *gin.Context) (uuid.UUID, bool) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingBuyer, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return buyerID, true
}

var enqueueStatus = map[sale.Outcome]int{
	sale.OutcomeWaiting:          http.StatusCreated,
	sale.OutcomeAlreadyReserved:  http.StatusConflict,
	sale.OutcomeAlreadyPurchased: http.StatusConflict,
}

var reserveStatus = map[sale.Outcome]int{
	sale.OutcomeReserved:         http.StatusCreated,
	sale.OutcomeAlreadyReserved:  http.StatusConflict,
	sale.OutcomeAlreadyPurchased: http.StatusConflict,
	sale.OutcomeNotAdmitted:      http.StatusForbidden,
	sale.OutcomeSoldOut:          http.StatusGone,
}

var confirmStatus = map[sale.Outcome]int{
	sale.OutcomePaymentPending: http.StatusAccepted,
	sale.OutcomeExpired:        http.StatusGone,
}

func statusFor(table map[sale.Outcome]int, o sale.Outcome) int {
	if status, ok := table[o]; ok {
		return status
	}
	return http.StatusOK
}

// respondOutcome writes an expected outcome and tags the request log with it.
func respondOutcome(c *gin.Context, table map[sale.Outcome]int, o sale.Outcome, body any) {
	middleware.SetOutcome(c, o.String())
	c.JSON(statusFor(table, o), body)
}
