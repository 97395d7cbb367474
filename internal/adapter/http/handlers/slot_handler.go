package handlers

import (
	"errors"
	"net/http"

	response "bistro_core/internal/adapter/http/dto/response"
	"bistro_core/internal/usecase"
	"bistro_core/pkg"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes the time-slot ledger for a given service date.

type SlotHandler struct {
	slots usecase.ISlotUseCase
}

func NewSlotHandler(slots usecase.ISlotUseCase) *SlotHandler {
	return &SlotHandler{slots: slots}
}

// ListSlots godoc
// @Summary      Slot grid for a date
// @Description  Returns every operating-hours bucket for the date with its current occupancy.
// @Tags         slots
// @Produce      json
// @Param        date path string true "Service date (YYYY-MM-DD)"
// @Success      200 {array} response.SlotResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/slots/{date} [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	date := c.Param("date")

	slots, err := h.slots.ListByDate(c.Request.Context(), date)
	if err != nil {
		appErr := mapSlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeSlots(slots))
}

func mapSlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_SLOT", "Invalid slot date", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
