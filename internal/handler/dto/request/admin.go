package request

import "pickup-scheduler/internal/domain/slot"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type RescheduleRequest struct {
	NewSlotTime string `json:"newSlotTime" binding:"required,isoslot"`
}

func (r *RescheduleRequest) ToDomain() (slot.Slot, error) {
	return slot.Parse(r.NewSlotTime)
}
