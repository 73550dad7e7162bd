package response

import (
	"time"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	OrderNumber     string `json:"orderNumber"`
	AppointmentDate string `json:"appointmentDate" copier:"Date"`
	AppointmentTime string `json:"appointmentTime" copier:"Time"`
	CustomerEmail   string `json:"customerEmail"`
	CreatedTime     string `json:"createdTime"`
	SlotTime        string `json:"slotTime,omitempty" copier:"-"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Count        int                   `json:"count"`
	Removed      int                   `json:"removed"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RescheduleResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
	EmailSent   bool                `json:"emailSent"`
}

type CancelResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

func FromAppointment(a appointment.Appointment, s slot.Slot) (AppointmentResponse, error) {
	var res AppointmentResponse
	if err := copier.Copy(&res, &a); err != nil {
		return AppointmentResponse{}, err
	}
	res.SlotTime = s.String()
	return res, nil
}

func FromAppointmentList(r *commands.ListAppointmentsResult, loc *time.Location) (AppointmentListResponse, error) {
	list := make([]AppointmentResponse, 0, len(r.Appointments))
	for _, a := range r.Appointments {
		s, _ := a.Slot(loc)
		item, err := FromAppointment(a, s)
		if err != nil {
			return AppointmentListResponse{}, err
		}
		list = append(list, item)
	}
	return AppointmentListResponse{
		Appointments: list,
		Count:        len(list),
		Removed:      r.Removed,
	}, nil
}

func FromReschedule(r *commands.RescheduleResult) (RescheduleResponse, error) {
	appt, err := FromAppointment(r.Appointment, r.Slot)
	if err != nil {
		return RescheduleResponse{}, err
	}
	return RescheduleResponse{
		Message:     "Appointment rescheduled successfully",
		Appointment: appt,
		EmailSent:   r.EmailSent,
	}, nil
}
