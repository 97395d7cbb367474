package handlers

import (
	"log"
	"net/http"

	response "bistro_core/internal/adapter/http/dto/response"
	"bistro_core/internal/usecase"
	"bistro_core/pkg"

	"github.com/gin-gonic/gin"
)

// KitchenHandler exposes the live kitchen status and the reconciliation
// trigger.

type KitchenHandler struct {
	status    usecase.IKitchenStatusUseCase
	reconcile usecase.IReconcileUseCase
}

func NewKitchenHandler(status usecase.IKitchenStatusUseCase, reconcile usecase.IReconcileUseCase) *KitchenHandler {
	return &KitchenHandler{status: status, reconcile: reconcile}
}

// GetKitchenStatus godoc
// @Summary      Current kitchen load
// @Description  Live load snapshot plus the next slot with free capacity.
// @Tags         kitchen
// @Produce      json
// @Success      200 {object} response.KitchenStatusResponse
// @Router       /v1/kitchen/status [get]
func (h *KitchenHandler) GetKitchenStatus(c *gin.Context) {
	status, err := h.status.Status(c.Request.Context())
	if err != nil {
		log.Printf("[kitchen][handler] status failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromKitchenStatus(status))
}

// Reconcile godoc
// @Summary      Rebuild capacity caches
// @Description  Recomputes the load snapshot and slot counters from the non-terminal orders.
// @Tags         kitchen
// @Produce      json
// @Success      200 {object} response.ReconcileResponse
// @Router       /v1/kitchen/reconcile [post]
func (h *KitchenHandler) Reconcile(c *gin.Context) {
	report, err := h.reconcile.Rebuild(c.Request.Context())
	if err != nil {
		log.Printf("[kitchen][handler] reconcile failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[kitchen][handler] reconcile done active=%d queued=%d slots_corrected=%d",
		report.ActiveOrders, report.QueuedOrders, report.SlotsCorrected)
	c.JSON(http.StatusOK, response.FromReconcileReport(report))
}
