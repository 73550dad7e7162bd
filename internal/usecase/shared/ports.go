package shared

import (
	"context"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/domain/order"
	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/domain/slot"
)

// SlotLocker is the in-process reservation lock table.
type SlotLocker interface {
	Acquire(key reservation.Key) bool
	Release(key reservation.Key)
}

// AppointmentRepository reads and replaces the whole appointments file.
// Load returns an empty book when the file does not exist yet.
type AppointmentRepository interface {
	Load(ctx context.Context) (*appointment.Book, error)
	Save(ctx context.Context, book *appointment.Book) error
}

type OrderRepository interface {
	Load(ctx context.Context) (order.Catalog, error)
}

// PickupNotice is the payload of customer notifications.
type PickupNotice struct {
	OrderNumber   string
	CustomerEmail string
	Slot          slot.Slot
	// PreviousSlot is only set for reschedules.
	PreviousSlot slot.Slot
}

// Notifier delivers customer emails. Callers treat failures as non-fatal.
type Notifier interface {
	SendConfirmation(ctx context.Context, n PickupNotice) error
	SendCancellation(ctx context.Context, n PickupNotice) error
	SendReschedule(ctx context.Context, n PickupNotice) error
}
