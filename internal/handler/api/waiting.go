package api

import (
	"errors"
	"net/http"

	resdto "festival-flash-sale/internal/handler/dto/response"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/pkg/clock"
	"festival-flash-sale/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errNotWaiting = errors.New("buyer not in waiting room")

type WaitingHandler struct {
	admission usecase.AdmissionUseCase
	clock     clock.Clock
}

func NewWaitingHandler(admission usecase.AdmissionUseCase, clk clock.Clock) *WaitingHandler {
	return &WaitingHandler{
		admission: admission,
		clock:     clk,
	}
}

// Enqueue joins the waiting room, or moves the buyer to the back if already in it.
func (h *WaitingHandler) Enqueue(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	buyerID, ok := requireBuyer(c)
	if !ok {
		return
	}

	pos, err := h.admission.Enqueue(c.Request.Context(), resourceID, buyerID, h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	respondOutcome(c, enqueueStatus, pos.Outcome, resdto.FromPosition(pos))
}

func (h *WaitingHandler) Rank(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	buyerID, ok := requireBuyer(c)
	if !ok {
		return
	}

	pos, err := h.admission.Rank(c.Request.Context(), resourceID, buyerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !pos.Found() {
		resp := httperr.NewResponse(http.StatusNotFound, httperr.CodeNotWaiting, "Not in waiting room")
		resp.Detail = resdto.FromPosition(pos)
		httperr.Abort(c, resp, errNotWaiting)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPosition(pos))
}

func (h *WaitingHandler) Leave(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	buyerID, ok := requireBuyer(c)
	if !ok {
		return
	}

	if err := h.admission.Dequeue(c.Request.Context(), resourceID, buyerID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
