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

type AdminHandler struct {
	ledger       usecase.LedgerUseCase
	admission    usecase.AdmissionUseCase
	compensation usecase.CompensationUseCase
	clock        clock.Clock
}

func NewAdminHandler(
	ledger usecase.LedgerUseCase,
	admission usecase.AdmissionUseCase,
	compensation usecase.CompensationUseCase,
	clk clock.Clock,
) *AdminHandler {
	return &AdminHandler{
		ledger:       ledger,
		admission:    admission,
		compensation: compensation,
		clock:        clk,
	}
}

func (h *AdminHandler) GetStock(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}

	stock, err := h.ledger.GetCount(c.Request.Context(), resourceID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStock(stock))
}

// SetStock reseeds the counter. Units already purchased are left out.
func (h *AdminHandler) SetStock(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	var req reqdto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	stock, err := h.ledger.SetCount(c.Request.Context(), resourceID, *req.Capacity)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStock(stock))
}

// Rollback releases the listed reservations. Sessions that fail stay for the
// next sweep and are reported back.
func (h *AdminHandler) Rollback(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}
	var req reqdto.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result := h.compensation.ReleaseMany(c.Request.Context(), resourceID, req.SessionIDs)
	c.JSON(http.StatusOK, resdto.FromRollback(result))
}

func (h *AdminHandler) Advance(c *gin.Context) {
	resourceID, ok := parseIDParam(c, "resourceId")
	if !ok {
		return
	}

	adv, err := h.admission.AdvanceCursor(c.Request.Context(), resourceID, h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdvance(adv))
}
