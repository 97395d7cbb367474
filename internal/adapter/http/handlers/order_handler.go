package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bistro_core/internal/adapter/http/dto/request"
	response "bistro_core/internal/adapter/http/dto/response"
	"bistro_core/internal/domain/entities"
	"bistro_core/internal/infrastructure/monitoring"
	"bistro_core/internal/usecase"
	"bistro_core/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for order admission and lifecycle.

type OrderHandler struct {
	admission usecase.IAdmissionUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewOrderHandler(admission usecase.IAdmissionUseCase, lifecycle usecase.ILifecycleUseCase) *OrderHandler {
	return &OrderHandler{admission: admission, lifecycle: lifecycle}
}

// CreateOrder godoc
// @Summary      Admit an order
// @Description  Runs the admission decision: immediate orders are checked against kitchen load, scheduled orders reserve a time slot.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order body request.CreateOrderRequest true "Order payload"
// @Success      201 {object} response.AdmissionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} response.AdmissionResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		monitoring.ObserveAdmission("invalid")
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if err := payload.ValidateShape(); err != nil {
		monitoring.ObserveAdmission("invalid")
		appErr := pkg.NewDomainError("INVALID_ORDER", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := toAdmitCommand(payload)
	result, err := h.admission.Admit(c.Request.Context(), cmd)
	if err != nil {
		h.writeAdmissionFailure(c, result, err)
		return
	}

	monitoring.ObserveAdmission("admitted")
	log.Printf("[order][handler] admitted order_id=%s type=%s slot_key=%s", result.Order.ID, result.Order.Type, result.Order.SlotKey)
	c.JSON(http.StatusCreated, response.FromAdmittedOrder(result.Order))
}

// writeAdmissionFailure renders a declined admission. Overload and full-slot
// declines keep the AdmissionResponse shape so the caller can act on the
// alternative slot; everything else degrades to the plain error envelope.
func (h *OrderHandler) writeAdmissionFailure(c *gin.Context, result usecase.AdmissionResult, err error) {
	switch {
	case errors.Is(err, usecase.ErrKitchenOverloaded):
		monitoring.ObserveAdmission("overloaded")
		log.Printf("[order][handler] declined overloaded offered_slot=%v", result.OfferedSlot != nil)
		c.JSON(http.StatusConflict, response.AdmissionResponse{
			Admitted:    false,
			OfferedSlot: response.FromTimeSlotPtr(result.OfferedSlot),
			Reason:      "KITCHEN_OVERLOADED",
		})
	case errors.Is(err, usecase.ErrSlotFull), errors.Is(err, usecase.ErrSlotUnavailable):
		monitoring.ObserveAdmission("slot_full")
		log.Printf("[order][handler] declined slot-full suggested_slot=%v", result.SuggestedSlot != nil)
		reason := "SLOT_FULL"
		if errors.Is(err, usecase.ErrSlotUnavailable) {
			reason = "SLOT_UNAVAILABLE"
		}
		c.JSON(http.StatusConflict, response.AdmissionResponse{
			Admitted:      false,
			SuggestedSlot: response.FromTimeSlotPtr(result.SuggestedSlot),
			Reason:        reason,
		})
	default:
		monitoring.ObserveAdmission("error")
		log.Printf("[order][handler] admit failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// GetOrder godoc
// @Summary      Fetch an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.admission.GetOrder(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary      Advance an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        transition body request.TransitionRequest true "Target status"
// @Success      200 {object} response.OrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid transition payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	target := entities.OrderStatus(payload.Status)
	order, err := h.lifecycle.Transition(c.Request.Context(), id, target)
	if err != nil {
		log.Printf("[order][handler] transition failed order_id=%s target=%s err=%v", id, target, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	monitoring.ObserveTransition(order.Status)
	log.Printf("[order][handler] transition success order_id=%s status=%s", order.ID, order.Status)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelOrder godoc
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.lifecycle.Cancel(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] cancel failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	monitoring.ObserveTransition(order.Status)
	log.Printf("[order][handler] cancel success order_id=%s", order.ID)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func toAdmitCommand(payload request.CreateOrderRequest) usecase.AdmitCommand {
	items := make([]entities.OrderItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, entities.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Category:   it.Category,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		})
	}

	return usecase.AdmitCommand{
		Items:         items,
		TotalAmount:   payload.TotalAmount,
		Type:          entities.OrderType(payload.OrderType),
		Priority:      entities.Priority(payload.Priority),
		ScheduledDate: payload.ScheduledDate,
		ScheduledTime: payload.ScheduledTime,
	}
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_ORDER", "Invalid order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
