package api

import (
	"net/http"

	reqdto "festival-flash-sale/internal/handler/dto/request"
	resdto "festival-flash-sale/internal/handler/dto/response"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations usecase.ReservationUseCase
	clock        clock.Clock
	cfg          config.SaleConfig
}

func NewReservationHandler(reservations usecase.ReservationUseCase, clk clock.Clock, cfg config.SaleConfig) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		clock:        clk,
		cfg:          cfg,
	}
}

// Reserve claims one unit for an admitted buyer. An empty body uses the
// configured hold time.
func (h *ReservationHandler) Reserve(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	buyerID, ok := requireBuyer(c)
	if !ok {
		return
	}

	var req reqdto.ReserveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.reservations.Reserve(c.Request.Context(), resourceID, buyerID, req.TTL(h.cfg.ReservationTTL), h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	respondOutcome(c, reserveStatus, result.Outcome, resdto.FromReserveResult(result))
}

// Confirm starts payment for a held reservation.
func (h *ReservationHandler) Confirm(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "sessionId")
	if !ok {
		return
	}
	buyerID, ok := requireBuyer(c)
	if !ok {
		return
	}

	result, err := h.reservations.Confirm(c.Request.Context(), resourceID, sessionID, buyerID, h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	respondOutcome(c, confirmStatus, result.Outcome, resdto.FromConfirmResult(result))
}
