//go:build unit || e2e

package builder

import (
	"time"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/domain/slot"
	reqdto "pickup-scheduler/internal/handler/dto/request"
)

type AppointmentBuilder struct {
	OrderNumber   string
	Slot          slot.Slot
	CustomerEmail string
	CreatedAt     time.Time
	Location      *time.Location
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		OrderNumber:   "SO-1001",
		Slot:          slot.MustParse("2025-01-15T09:00:00Z"),
		CustomerEmail: "customer@example.com",
		CreatedAt:     time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC),
		Location:      time.UTC,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

func (a *AppointmentBuilder) BuildDomain() appointment.Appointment {
	return appointment.New(a.OrderNumber, a.Slot, a.CustomerEmail, a.CreatedAt, a.Location)
}

func (a *AppointmentBuilder) BuildBook(others ...appointment.Appointment) *appointment.Book {
	return &appointment.Book{Entries: append([]appointment.Appointment{a.BuildDomain()}, others...)}
}

func (a *AppointmentBuilder) BuildDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		OrderNumber:   a.OrderNumber,
		SlotTime:      a.Slot.String(),
		CustomerEmail: a.CustomerEmail,
	}
}
