package response

import (
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/usecase/commands"
	"pickup-scheduler/internal/usecase/queries"
)

type OrderResponse struct {
	OrderNumber         string `json:"orderNumber"`
	Status              string `json:"status"`
	ReadyDate           string `json:"readyDate"`
	HasAppointment      bool   `json:"hasAppointment"`
	AppointmentDate     string `json:"appointmentDate,omitempty"`
	AppointmentTime     string `json:"appointmentTime,omitempty"`
	AppointmentDateTime string `json:"appointmentDateTime,omitempty"`
}

type ValidateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

func FromOrderStatus(s *commands.OrderStatus) ValidateOrderResponse {
	res := ValidateOrderResponse{
		Message: "Order validated and ready for scheduling",
		Order: OrderResponse{
			OrderNumber: s.Order.Number,
			Status:      s.Order.Status(),
			ReadyDate:   s.Order.ReadyDate,
		},
	}
	if s.HasAppointment() {
		res.Message = "Order already has an appointment scheduled for " + s.Appointment.Display()
		res.Order.HasAppointment = true
		res.Order.AppointmentDate = s.Appointment.Date
		res.Order.AppointmentTime = s.Appointment.Time
		res.Order.AppointmentDateTime = s.Appointment.Display()
	}
	return res
}

type AvailableSlotsResponse struct {
	Slots          []string `json:"slots"`
	TotalSlots     int      `json:"totalSlots"`
	AvailableCount int      `json:"availableCount"`
	BookedCount    int      `json:"bookedCount"`
}

func FromSlotAvailability(v *queries.SlotAvailabilityView) AvailableSlotsResponse {
	return AvailableSlotsResponse{
		Slots:          slotStrings(v.Slots),
		TotalSlots:     v.TotalSlots,
		AvailableCount: v.AvailableCount,
		BookedCount:    v.BookedCount,
	}
}

type BookAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
	EmailSent   bool                `json:"emailSent"`
}

func FromBookResult(r *commands.BookAppointmentResult) (BookAppointmentResponse, error) {
	appt, err := FromAppointment(r.Appointment, r.Slot)
	if err != nil {
		return BookAppointmentResponse{}, err
	}
	return BookAppointmentResponse{
		Message:     "Appointment booked successfully",
		Appointment: appt,
		EmailSent:   r.EmailSent,
	}, nil
}

func slotStrings(slots []slot.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
