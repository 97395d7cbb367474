package response

import "bistro_core/internal/domain/entities"

type SlotResponse struct {
	Date          string `json:"date"`
	TimeBucket    string `json:"time_bucket"`
	SlotType      string `json:"slot_type"`
	MaxOrders     int    `json:"max_orders"`
	CurrentOrders int    `json:"current_orders"`
	IsAvailable   bool   `json:"is_available"`
}

func FromTimeSlot(s entities.TimeSlot) SlotResponse {
	return SlotResponse{
		Date:          s.Date,
		TimeBucket:    s.TimeBucket,
		SlotType:      string(s.SlotType),
		MaxOrders:     s.MaxOrders,
		CurrentOrders: s.CurrentOrders,
		IsAvailable:   s.IsAvailable,
	}
}

func FromTimeSlots(slots []entities.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromTimeSlot(s))
	}
	return out
}

func FromTimeSlotPtr(s *entities.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}
	r := FromTimeSlot(*s)
	return &r
}
