package reservation

import (
	"strings"
	"time"

	"pickup-scheduler/internal/domain/slot"
)

const DefaultTimeout = 60 * time.Second

// Key identifies a reservation attempt: one order trying to take one slot.
type Key struct {
	OrderNumber string
	Slot        slot.Slot
}

func NewKey(orderNumber string, s slot.Slot) Key {
	return Key{
		OrderNumber: strings.TrimSpace(orderNumber),
		Slot:        slot.New(s.Time()),
	}
}

func (k Key) String() string {
	return k.OrderNumber + "_" + k.Slot.String()
}

// Lock is an in-memory marker held while a booking for Key is in flight.
type Lock struct {
	Key        Key
	AcquiredAt time.Time
}

// Expired reports whether the lock is older than timeout at now.
func (l Lock) Expired(now time.Time, timeout time.Duration) bool {
	return now.Sub(l.AcquiredAt) > timeout
}
