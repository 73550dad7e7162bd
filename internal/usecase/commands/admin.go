package commands

import (
	"context"
	"log/slog"
	"strings"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/pkg/clock"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/shared"
)

type ListAppointmentsResult struct {
	Appointments []appointment.Appointment
	// Removed counts stale rows dropped from the file during this call.
	Removed int
}

type RescheduleResult struct {
	Appointment  appointment.Appointment
	PreviousSlot slot.Slot
	Slot         slot.Slot
	EmailSent    bool
}

type AdminCommands interface {
	ListAppointments(ctx context.Context) (*ListAppointmentsResult, error)
	CancelAppointment(ctx context.Context, orderNumber string) (*appointment.Appointment, error)
	RescheduleAppointment(ctx context.Context, orderNumber string, newSlot slot.Slot) (*RescheduleResult, error)
}

type adminCommandsImpl struct {
	orders       shared.OrderRepository
	appointments shared.AppointmentRepository
	locker       shared.SlotLocker
	notifier     shared.Notifier
	calendar     slot.Calendar
	clock        clock.Clock
}

func NewAdminCommands(
	orders shared.OrderRepository,
	appointments shared.AppointmentRepository,
	locker shared.SlotLocker,
	notifier shared.Notifier,
	calendar slot.Calendar,
	clock clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		orders:       orders,
		appointments: appointments,
		locker:       locker,
		notifier:     notifier,
		calendar:     calendar,
		clock:        clock,
	}
}

// ListAppointments drops incomplete rows and rows of fulfilled orders, rewriting the file when anything was dropped.
func (a *adminCommandsImpl) ListAppointments(ctx context.Context) (*ListAppointmentsResult, error) {
	catalog, err := a.orders.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	book, err := a.appointments.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	dropped := book.Prune(func(appt appointment.Appointment) bool {
		if !appt.IsComplete() {
			return false
		}
		if o, ok := catalog.Find(appt.OrderNumber); ok && o.IsFulfilled() {
			slog.Info("removing appointment of fulfilled order", "order_number", appt.OrderNumber)
			return false
		}
		return true
	})

	if len(dropped) > 0 {
		if err := a.appointments.Save(ctx, book); err != nil {
			return nil, storeErr(err)
		}
		slog.Info("appointments file cleaned", "removed", len(dropped))
	}

	return &ListAppointmentsResult{Appointments: book.Entries, Removed: len(dropped)}, nil
}

func (a *adminCommandsImpl) CancelAppointment(ctx context.Context, orderNumber string) (*appointment.Appointment, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, errs.Wrap(ErrValidation, "order number is required")
	}

	book, err := a.appointments.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	removed, found := book.Remove(orderNumber)
	if !found {
		return nil, ErrAppointmentNotFound
	}
	if err := a.appointments.Save(ctx, book); err != nil {
		return nil, storeErr(err)
	}

	slog.Info("appointment cancelled", "order_number", orderNumber)

	if removed.CustomerEmail != "" {
		s, _ := removed.Slot(a.calendar.Location)
		if notifyErr := a.notifier.SendCancellation(ctx, shared.PickupNotice{
			OrderNumber:   removed.OrderNumber,
			CustomerEmail: removed.CustomerEmail,
			Slot:          s,
		}); notifyErr != nil {
			slog.Warn("cancellation email failed", "order_number", orderNumber, "error", notifyErr.Error())
		}
	}

	return &removed, nil
}

func (a *adminCommandsImpl) RescheduleAppointment(ctx context.Context, orderNumber string, newSlot slot.Slot) (*RescheduleResult, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" || newSlot.IsZero() {
		return nil, errs.Wrap(ErrValidation, "order number and new slot time are required")
	}

	key := reservation.NewKey(orderNumber, newSlot)
	result, err := shared.WithReservation(a.locker, key, func() (*RescheduleResult, error) {
		return a.reschedule(ctx, orderNumber, newSlot)
	})
	if err != nil {
		return nil, err
	}

	if result.Appointment.CustomerEmail != "" {
		if notifyErr := a.notifier.SendReschedule(ctx, shared.PickupNotice{
			OrderNumber:   result.Appointment.OrderNumber,
			CustomerEmail: result.Appointment.CustomerEmail,
			Slot:          result.Slot,
			PreviousSlot:  result.PreviousSlot,
		}); notifyErr != nil {
			slog.Warn("reschedule email failed", "order_number", orderNumber, "error", notifyErr.Error())
		} else {
			result.EmailSent = true
		}
	}

	return result, nil
}

func (a *adminCommandsImpl) reschedule(ctx context.Context, orderNumber string, newSlot slot.Slot) (*RescheduleResult, error) {
	now := a.clock.Now()
	if !a.calendar.Contains(now, newSlot) {
		return nil, errs.Wrap(ErrInvalidSlot, newSlot.String())
	}

	book, err := a.appointments.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	appt, found := book.Find(orderNumber)
	if !found {
		return nil, ErrAppointmentNotFound
	}
	if book.OccupiedByOthers(orderNumber, a.calendar.Location).Has(newSlot) {
		return nil, ErrSlotUnavailable
	}

	previous, _ := appt.Slot(a.calendar.Location)
	appt.Reschedule(newSlot, now, a.calendar.Location)
	book.Put(appt)
	if err := a.appointments.Save(ctx, book); err != nil {
		return nil, storeErr(err)
	}

	slog.Info("appointment rescheduled",
		"order_number", orderNumber,
		"from", previous.String(),
		"to", newSlot.String())

	return &RescheduleResult{Appointment: appt, PreviousSlot: previous, Slot: newSlot}, nil
}
