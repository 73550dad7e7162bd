package commands

import (
	"context"
	"log/slog"
	"strings"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/domain/order"
	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/pkg/clock"
	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/usecase/shared"
)

// OrderStatus is the outcome of a successful order validation.
type OrderStatus struct {
	Order       order.Order
	Appointment *appointment.Appointment
}

func (s *OrderStatus) HasAppointment() bool {
	return s.Appointment != nil
}

type BookAppointmentInput struct {
	OrderNumber   string
	Slot          slot.Slot
	CustomerEmail string
}

type BookAppointmentResult struct {
	Appointment appointment.Appointment
	Slot        slot.Slot
	// EmailSent is false when the confirmation could not be delivered; the booking still stands.
	EmailSent bool
}

type BookingCommands interface {
	ValidateOrder(ctx context.Context, orderNumber string) (*OrderStatus, error)
	BookAppointment(ctx context.Context, in BookAppointmentInput) (*BookAppointmentResult, error)
}

type bookingCommandsImpl struct {
	orders       shared.OrderRepository
	appointments shared.AppointmentRepository
	locker       shared.SlotLocker
	notifier     shared.Notifier
	calendar     slot.Calendar
	clock        clock.Clock
}

func NewBookingCommands(
	orders shared.OrderRepository,
	appointments shared.AppointmentRepository,
	locker shared.SlotLocker,
	notifier shared.Notifier,
	calendar slot.Calendar,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		orders:       orders,
		appointments: appointments,
		locker:       locker,
		notifier:     notifier,
		calendar:     calendar,
		clock:        clock,
	}
}

func (b *bookingCommandsImpl) ValidateOrder(ctx context.Context, orderNumber string) (*OrderStatus, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, errs.Wrap(ErrValidation, "order number is required")
	}

	catalog, err := b.orders.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	book, err := b.appointments.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	o, ok := catalog.Find(orderNumber)
	if !ok || !o.IsReady() {
		return nil, ErrOrderNotFound
	}

	if o.IsPickedUp() {
		if _, removed := book.Remove(orderNumber); removed {
			if saveErr := b.appointments.Save(ctx, book); saveErr != nil {
				return nil, storeErr(saveErr)
			}
			slog.Info("removed appointment of picked-up order", "order_number", orderNumber)
		}
		return nil, ErrOrderPickedUp
	}

	status := &OrderStatus{Order: o}
	if existing, found := book.Find(orderNumber); found && existing.HasSchedule() {
		status.Appointment = &existing
	}
	return status, nil
}

func (b *bookingCommandsImpl) BookAppointment(ctx context.Context, in BookAppointmentInput) (*BookAppointmentResult, error) {
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.OrderNumber == "" || in.Slot.IsZero() || in.CustomerEmail == "" {
		return nil, errs.Wrap(ErrValidation, "order number, slot time and customer email are required")
	}

	key := reservation.NewKey(in.OrderNumber, in.Slot)
	result, err := shared.WithReservation(b.locker, key, func() (*BookAppointmentResult, error) {
		return b.book(ctx, in)
	})
	if err != nil {
		return nil, err
	}

	if notifyErr := b.notifier.SendConfirmation(ctx, shared.PickupNotice{
		OrderNumber:   in.OrderNumber,
		CustomerEmail: in.CustomerEmail,
		Slot:          in.Slot,
	}); notifyErr != nil {
		slog.Warn("confirmation email failed",
			"order_number", in.OrderNumber, "error", notifyErr.Error())
	} else {
		result.EmailSent = true
	}

	return result, nil
}

// book runs under the reservation lock and re-reads both files before writing.
func (b *bookingCommandsImpl) book(ctx context.Context, in BookAppointmentInput) (*BookAppointmentResult, error) {
	now := b.clock.Now()
	if !b.calendar.Contains(now, in.Slot) {
		return nil, errs.Wrap(ErrInvalidSlot, in.Slot.String())
	}

	catalog, err := b.orders.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	book, err := b.appointments.Load(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	o, ok := catalog.Find(in.OrderNumber)
	if !ok || !o.IsReady() {
		return nil, ErrOrderNotFound
	}
	if o.IsPickedUp() {
		return nil, ErrOrderPickedUp
	}
	if existing, found := book.Find(in.OrderNumber); found && existing.HasSchedule() {
		return nil, &ExistingAppointmentError{Appointment: existing}
	}
	if book.Occupied(b.calendar.Location).Has(in.Slot) {
		return nil, ErrSlotUnavailable
	}

	appt := appointment.New(o.Number, in.Slot, in.CustomerEmail, now, b.calendar.Location)
	book.Put(appt)
	if err := b.appointments.Save(ctx, book); err != nil {
		return nil, storeErr(err)
	}

	slog.Info("appointment booked",
		"order_number", appt.OrderNumber,
		"slot", in.Slot.String())

	return &BookAppointmentResult{Appointment: appt, Slot: in.Slot}, nil
}
