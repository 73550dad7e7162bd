package slot

import (
	"errors"
	"time"
)

var ErrInvalidCalendar = errors.New("invalid calendar configuration")

// Calendar describes the bookable window. Business hours are wall-clock hours in Location.
type Calendar struct {
	Granularity time.Duration
	StartHour   int
	EndHour     int
	DaysAhead   int
	Location    *time.Location
}

func DefaultCalendar() Calendar {
	return Calendar{
		Granularity: 30 * time.Minute,
		StartHour:   9,
		EndHour:     17,
		DaysAhead:   8,
		Location:    time.UTC,
	}
}

func (c Calendar) Validate() error {
	switch {
	case c.Granularity <= 0:
		return errors.Join(ErrInvalidCalendar, errors.New("granularity must be positive"))
	case c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour:
		return errors.Join(ErrInvalidCalendar, errors.New("business hours must satisfy 0 <= start < end <= 24"))
	case c.DaysAhead < 0:
		return errors.Join(ErrInvalidCalendar, errors.New("look-ahead days must not be negative"))
	}
	return nil
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Generate lists every slot in the look-ahead window that starts after now,
// in ascending order. Weekends are skipped, and so is a trailing slot that
// would run past the end of business hours.
func (c Calendar) Generate(now time.Time) []Slot {
	if c.Validate() != nil {
		return nil
	}
	loc := c.location()
	today := now.In(loc)
	y, m, d := today.Date()

	var slots []Slot
	for offset := 0; offset < c.DaysAhead; offset++ {
		day := time.Date(y, m, d+offset, 0, 0, 0, 0, loc)
		if isWeekend(day.Weekday()) {
			continue
		}
		dy, dm, dd := day.Date()
		open := time.Date(dy, dm, dd, c.StartHour, 0, 0, 0, loc)
		closing := time.Date(dy, dm, dd, c.EndHour, 0, 0, 0, loc)
		for t := open; !t.Add(c.Granularity).After(closing); t = t.Add(c.Granularity) {
			if t.After(now) {
				slots = append(slots, New(t))
			}
		}
	}
	return slots
}

// Contains reports whether s is one of the slots currently offered.
func (c Calendar) Contains(now time.Time, s Slot) bool {
	for _, candidate := range c.Generate(now) {
		if candidate.Equal(s) {
			return true
		}
	}
	return false
}

// Available removes occupied slots from the generated calendar.
func (c Calendar) Available(now time.Time, occupied Set) []Slot {
	all := c.Generate(now)
	free := make([]Slot, 0, len(all))
	for _, s := range all {
		if !occupied.Has(s) {
			free = append(free, s)
		}
	}
	return free
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
