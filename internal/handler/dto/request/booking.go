package request

import (
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/usecase/commands"
)

type ValidateOrderRequest struct {
	OrderNumber string `json:"orderNumber" binding:"required,max=64"`
}

type BookAppointmentRequest struct {
	OrderNumber   string `json:"orderNumber" binding:"required,max=64"`
	SlotTime      string `json:"slotTime" binding:"required,isoslot"`
	CustomerEmail string `json:"customerEmail" binding:"required,email,max=254"`
}

func (r *BookAppointmentRequest) ToInput() (commands.BookAppointmentInput, error) {
	s, err := slot.Parse(r.SlotTime)
	if err != nil {
		return commands.BookAppointmentInput{}, err
	}
	return commands.BookAppointmentInput{
		OrderNumber:   r.OrderNumber,
		Slot:          s,
		CustomerEmail: r.CustomerEmail,
	}, nil
}
