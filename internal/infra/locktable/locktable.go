package locktable

import (
	"log/slog"
	"sync"
	"time"

	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/pkg/clock"
)

// Table is a process-local advisory lock table keyed by (order, slot).
// It does not coordinate with other processes or other writers of the backing file.
type Table struct {
	mu      sync.Mutex
	locks   map[reservation.Key]reservation.Lock
	timeout time.Duration
	clock   clock.Clock
	logger  *slog.Logger
}

func New(timeout time.Duration, clk clock.Clock, logger *slog.Logger) *Table {
	if timeout <= 0 {
		timeout = reservation.DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{
		locks:   make(map[reservation.Key]reservation.Lock),
		timeout: timeout,
		clock:   clk,
		logger:  logger,
	}
}

// Acquire sweeps expired locks, then takes the lock for key if nobody holds it.
// The first caller wins; concurrent callers get false immediately.
func (t *Table) Acquire(key reservation.Key) bool {
	key = reservation.NewKey(key.OrderNumber, key.Slot)

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	t.sweepLocked(now)

	if _, held := t.locks[key]; held {
		return false
	}
	t.locks[key] = reservation.Lock{Key: key, AcquiredAt: now}
	return true
}

// Release drops the lock for key. Releasing an absent key is a no-op.
func (t *Table) Release(key reservation.Key) {
	key = reservation.NewKey(key.OrderNumber, key.Slot)

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.locks, key)
}

// Held reports whether a live lock exists for key.
func (t *Table) Held(key reservation.Key) bool {
	key = reservation.NewKey(key.OrderNumber, key.Slot)

	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[key]
	return ok && !l.Expired(t.clock.Now(), t.timeout)
}

// Len counts entries still in the table, including expired ones not yet swept.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.locks)
}

func (t *Table) sweepLocked(now time.Time) {
	for k, l := range t.locks {
		if l.Expired(now, t.timeout) {
			t.logger.Warn("reservation lock expired without release",
				"key", k.String(),
				"held_for", now.Sub(l.AcquiredAt))
			delete(t.locks, k)
		}
	}
}
