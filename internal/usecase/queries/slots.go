package queries

import (
	"context"

	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/pkg/clock"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/shared"
)

var ErrAvailabilityUnavailable = errs.New("slot availability could not be computed")

// SlotAvailabilityView is the read model behind the public slot picker.
type SlotAvailabilityView struct {
	Slots          []slot.Slot
	TotalSlots     int
	AvailableCount int
	BookedCount    int
}

type SlotQueries interface {
	AvailableSlots(ctx context.Context) (*SlotAvailabilityView, error)
}

type slotQueriesImpl struct {
	appointments shared.AppointmentRepository
	calendar     slot.Calendar
	clock        clock.Clock
}

func NewSlotQueries(appointments shared.AppointmentRepository, calendar slot.Calendar, clock clock.Clock) SlotQueries {
	return &slotQueriesImpl{
		appointments: appointments,
		calendar:     calendar,
		clock:        clock,
	}
}

func (q *slotQueriesImpl) AvailableSlots(ctx context.Context) (*SlotAvailabilityView, error) {
	book, err := q.appointments.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityUnavailable)
	}

	now := q.clock.Now()
	occupied := book.Occupied(q.calendar.Location)
	all := q.calendar.Generate(now)
	free := q.calendar.Available(now, occupied)

	return &SlotAvailabilityView{
		Slots:          free,
		TotalSlots:     len(all),
		AvailableCount: len(free),
		BookedCount:    occupied.Len(),
	}, nil
}
