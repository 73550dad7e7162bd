package shared

import (
	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/pkg/errs"
)

var ErrSlotLocked = errs.New("slot is currently being booked by another request")

// WithReservation runs fn while holding the reservation lock for key.
// The lock is released on every exit path of fn, panics included.
func WithReservation[T any](locker SlotLocker, key reservation.Key, fn func() (T, error)) (T, error) {
	var zero T

	if !locker.Acquire(key) {
		return zero, errs.Wrap(ErrSlotLocked, key.String())
	}
	defer locker.Release(key)

	return fn()
}
