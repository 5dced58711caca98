package api

import (
	"net/http"

	reqdto "festival-flash-sale/internal/handler/dto/request"
	resdto "festival-flash-sale/internal/handler/dto/response"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler receives results from an external payment gateway. The
// bundled simulator delivers on a channel instead.
type PaymentHandler struct {
	reservations usecase.ReservationUseCase
	clock        clock.Clock
}

func NewPaymentHandler(reservations usecase.ReservationUseCase, clk clock.Clock) *PaymentHandler {
	return &PaymentHandler{
		reservations: reservations,
		clock:        clk,
	}
}

func (h *PaymentHandler) Callback(c *gin.Context) {
	var req reqdto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	outcome, err := h.reservations.CompletePayment(c.Request.Context(), req.ToDomain(), h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	respondOutcome(c, nil, outcome, resdto.OutcomeResponse{Outcome: outcome.String()})
}
