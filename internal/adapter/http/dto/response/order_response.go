package response

import (
	"time"

	"bistro_core/internal/domain/entities"
)

type OrderItemResponse struct {
	MenuItemID string  `json:"menu_item_id,omitempty"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`

	OrderType     string `json:"order_type"`
	Priority      string `json:"priority"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	SlotKey       string `json:"slot_key,omitempty"`

	ComplexityScore      int `json:"complexity_score"`
	EstimatedPrepMinutes int `json:"estimated_prep_minutes"`

	Status           string     `json:"status"`
	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	StartedCookingAt *time.Time `json:"started_cooking_at,omitempty"`
	ReadyAt          *time.Time `json:"ready_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Category:   it.Category,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		})
	}

	return OrderResponse{
		ID:                   o.ID,
		Items:                items,
		TotalAmount:          o.TotalAmount,
		OrderType:            string(o.Type),
		Priority:             string(o.Priority),
		ScheduledDate:        o.ScheduledDate,
		ScheduledTime:        o.ScheduledTime,
		SlotKey:              o.SlotKey,
		ComplexityScore:      o.ComplexityScore,
		EstimatedPrepMinutes: o.EstimatedPrepMinutes,
		Status:               string(o.Status),
		ConfirmedAt:          o.ConfirmedAt,
		StartedCookingAt:     o.StartedCookingAt,
		ReadyAt:              o.ReadyAt,
		CompletedAt:          o.CompletedAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// AdmissionResponse wraps the admitted order, or the slot the caller may act
// on when admission was declined.
type AdmissionResponse struct {
	Admitted      bool           `json:"admitted"`
	Order         *OrderResponse `json:"order,omitempty"`
	OfferedSlot   *SlotResponse  `json:"offered_slot,omitempty"`
	SuggestedSlot *SlotResponse  `json:"suggested_slot,omitempty"`
	Reason        string         `json:"reason,omitempty"`
}

func FromAdmittedOrder(o entities.Order) AdmissionResponse {
	resp := FromOrder(o)
	return AdmissionResponse{Admitted: true, Order: &resp}
}
