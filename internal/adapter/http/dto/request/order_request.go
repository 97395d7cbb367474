package request

import (
	"errors"
	"strings"
)

var (
	ErrMissingSchedule = errors.New("scheduled orders require scheduled_date and scheduled_time")
	ErrStraySchedule   = errors.New("immediate orders must not carry a schedule")
)

type OrderItemRequest struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the admission payload from the ordering frontend.
//
// The order_type tag decides which fields are meaningful: scheduled orders
// carry a (date, bucket) target, immediate orders must not. The total is
// always re-verified against the line items by the use case.
type CreateOrderRequest struct {
	OrderType     string             `json:"order_type" binding:"required,oneof=immediate scheduled"`
	Priority      string             `json:"priority" binding:"omitempty,oneof=normal high urgent"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	TotalAmount   float64            `json:"total_amount"`
	ScheduledDate string             `json:"scheduled_date"`
	ScheduledTime string             `json:"scheduled_time"`
}

// ValidateShape enforces the tagged-variant rules that gin bindings cannot
// express.
func (r CreateOrderRequest) ValidateShape() error {
	date := strings.TrimSpace(r.ScheduledDate)
	bucket := strings.TrimSpace(r.ScheduledTime)

	switch r.OrderType {
	case "scheduled":
		if date == "" || bucket == "" {
			return ErrMissingSchedule
		}
	case "immediate":
		if date != "" || bucket != "" {
			return ErrStraySchedule
		}
	}
	return nil
}

// TransitionRequest advances an order to a target status.
type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed preparing ready completed cancelled"`
}
