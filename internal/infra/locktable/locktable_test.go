//go:build unit

package locktable_test

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/infra/locktable"
	"pickup-scheduler/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	nine  = slot.MustParse("2025-01-15T09:00:00Z")
)

func newTable(clk clock.Clock) *locktable.Table {
	return locktable.New(reservation.DefaultTimeout, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTable_Acquire(t *testing.T) {
	t.Run("first caller wins", func(t *testing.T) {
		table := newTable(clock.NewMockClock(start))
		key := reservation.NewKey("SO-1", nine)

		assert.True(t, table.Acquire(key))
		assert.False(t, table.Acquire(key))
		assert.True(t, table.Held(key))
	})

	t.Run("keys are per order and slot", func(t *testing.T) {
		table := newTable(clock.NewMockClock(start))

		assert.True(t, table.Acquire(reservation.NewKey("SO-1", nine)))
		assert.True(t, table.Acquire(reservation.NewKey("SO-2", nine)))
		assert.True(t, table.Acquire(reservation.NewKey("SO-1", slot.MustParse("2025-01-15T09:30:00Z"))))
		assert.Equal(t, 3, table.Len())
	})

	t.Run("keys are normalized", func(t *testing.T) {
		table := newTable(clock.NewMockClock(start))

		require.True(t, table.Acquire(reservation.Key{OrderNumber: " SO-1 ", Slot: nine}))
		assert.False(t, table.Acquire(reservation.NewKey("SO-1", slot.MustParse("2025-01-15T09:00:00.000Z"))))
	})

	t.Run("release frees the key and is idempotent", func(t *testing.T) {
		table := newTable(clock.NewMockClock(start))
		key := reservation.NewKey("SO-1", nine)

		require.True(t, table.Acquire(key))
		table.Release(key)
		table.Release(key)
		assert.False(t, table.Held(key))
		assert.True(t, table.Acquire(key))
	})

	t.Run("release of an unknown key is a no-op", func(t *testing.T) {
		table := newTable(clock.NewMockClock(start))
		table.Release(reservation.NewKey("nobody", nine))
		assert.Equal(t, 0, table.Len())
	})
}

func TestTable_Expiry(t *testing.T) {
	t.Run("stale lock is swept on the next acquire", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		table := newTable(clk)
		key := reservation.NewKey("SO-1", nine)

		require.True(t, table.Acquire(key))

		clk.Add(61 * time.Second)
		assert.False(t, table.Held(key))
		assert.True(t, table.Acquire(key))
	})

	t.Run("lock at exactly the timeout is still held", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		table := newTable(clk)
		key := reservation.NewKey("SO-1", nine)

		require.True(t, table.Acquire(key))

		clk.Add(60 * time.Second)
		assert.False(t, table.Acquire(key))
	})

	t.Run("expired locks linger until an acquire sweeps them", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		table := newTable(clk)

		require.True(t, table.Acquire(reservation.NewKey("SO-1", nine)))
		require.True(t, table.Acquire(reservation.NewKey("SO-2", nine)))

		clk.Add(2 * time.Minute)
		assert.Equal(t, 2, table.Len())

		require.True(t, table.Acquire(reservation.NewKey("SO-3", nine)))
		assert.Equal(t, 1, table.Len())
	})
}

func TestTable_Concurrency(t *testing.T) {
	table := newTable(clock.NewRealClock())
	key := reservation.NewKey("SO-1", nine)

	const workers = 50
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		ready   = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-ready
			if table.Acquire(key) {
				winners.Add(1)
			}
		}()
	}
	close(ready)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.True(t, table.Held(key))
}
