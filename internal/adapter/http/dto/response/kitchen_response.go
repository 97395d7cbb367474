package response

import (
	"time"

	"bistro_core/internal/usecase"
)

// KitchenStatusResponse is the payload returned to frontends polling for
// live wait-time display.
type KitchenStatusResponse struct {
	ActiveOrders       int           `json:"active_orders"`
	QueuedOrders       int           `json:"queued_orders"`
	CurrentLoadPercent float64       `json:"current_load_percent"`
	IsOverloaded       bool          `json:"is_overloaded"`
	AvgWaitMinutes     int           `json:"avg_wait_minutes"`
	UpdatedAt          time.Time     `json:"updated_at"`
	NextAvailableSlot  *SlotResponse `json:"next_available_slot,omitempty"`
}

func FromKitchenStatus(s usecase.KitchenStatus) KitchenStatusResponse {
	return KitchenStatusResponse{
		ActiveOrders:       s.Load.ActiveOrders,
		QueuedOrders:       s.Load.QueuedOrders,
		CurrentLoadPercent: s.Load.CurrentLoadPercent,
		IsOverloaded:       s.Load.IsOverloaded,
		AvgWaitMinutes:     s.Load.AvgWaitMinutes,
		UpdatedAt:          s.Load.UpdatedAt,
		NextAvailableSlot:  FromTimeSlotPtr(s.NextAvailableSlot),
	}
}

type ReconcileResponse struct {
	ActiveOrders   int `json:"active_orders"`
	QueuedOrders   int `json:"queued_orders"`
	SlotsCorrected int `json:"slots_corrected"`
}

func FromReconcileReport(r usecase.ReconcileReport) ReconcileResponse {
	return ReconcileResponse{
		ActiveOrders:   r.ActiveOrders,
		QueuedOrders:   r.QueuedOrders,
		SlotsCorrected: r.SlotsCorrected,
	}
}
