//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"pickup-scheduler/internal/domain/reservation"
	"pickup-scheduler/internal/domain/slot"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	s := slot.MustParse("2025-01-15T09:00:00Z")

	k := reservation.NewKey(" SO-1 ", s)
	assert.Equal(t, "SO-1_2025-01-15T09:00:00Z", k.String())
	assert.Equal(t, k, reservation.NewKey("SO-1", slot.MustParse("2025-01-15T09:00:00.000Z")))
	assert.NotEqual(t, k, reservation.NewKey("SO-2", s))
}

func TestLock_Expired(t *testing.T) {
	acquired := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	l := reservation.Lock{AcquiredAt: acquired}

	assert.False(t, l.Expired(acquired.Add(59*time.Second), reservation.DefaultTimeout))
	assert.False(t, l.Expired(acquired.Add(60*time.Second), reservation.DefaultTimeout), "exactly at the timeout")
	assert.True(t, l.Expired(acquired.Add(61*time.Second), reservation.DefaultTimeout))
}
