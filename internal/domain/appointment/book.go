package appointment

import (
	"time"

	"pickup-scheduler/internal/domain/slot"
)

// Book is the full content of the appointments file.
type Book struct {
	Entries []Appointment
	// ExtraColumns lists non-standard headers in file order; they are written after the standard ones.
	ExtraColumns []string
}

func (b *Book) Header() []string {
	header := make([]string, 0, len(Columns)+len(b.ExtraColumns))
	header = append(header, Columns...)
	for _, c := range b.ExtraColumns {
		if !isStandardColumn(c) {
			header = append(header, c)
		}
	}
	return header
}

func (b *Book) Find(orderNumber string) (Appointment, bool) {
	if i := b.index(orderNumber); i >= 0 {
		return b.Entries[i], true
	}
	return Appointment{}, false
}

// Put replaces the first row for the order or appends a new one.
func (b *Book) Put(a Appointment) {
	if i := b.index(a.OrderNumber); i >= 0 {
		b.Entries[i] = a
		return
	}
	b.Entries = append(b.Entries, a)
}

// Remove drops every row for the order and reports whether any existed.
func (b *Book) Remove(orderNumber string) (Appointment, bool) {
	var (
		removed Appointment
		found   bool
	)
	kept := b.Entries[:0]
	for _, a := range b.Entries {
		if a.Matches(orderNumber) {
			if !found {
				removed = a
			}
			found = true
			continue
		}
		kept = append(kept, a)
	}
	b.Entries = kept
	return removed, found
}

// Prune keeps only rows for which keep returns true and returns the dropped rows.
func (b *Book) Prune(keep func(Appointment) bool) []Appointment {
	var dropped []Appointment
	kept := b.Entries[:0]
	for _, a := range b.Entries {
		if keep(a) {
			kept = append(kept, a)
			continue
		}
		dropped = append(dropped, a)
	}
	b.Entries = kept
	return dropped
}

// Occupied returns the set of booked slots. Rows whose date or time cannot be parsed are skipped.
func (b *Book) Occupied(loc *time.Location) slot.Set {
	return OccupiedSlots(b.Entries, loc)
}

// OccupiedByOthers is Occupied without the rows of the given order.
func (b *Book) OccupiedByOthers(orderNumber string, loc *time.Location) slot.Set {
	others := make([]Appointment, 0, len(b.Entries))
	for _, a := range b.Entries {
		if !a.Matches(orderNumber) {
			others = append(others, a)
		}
	}
	return OccupiedSlots(others, loc)
}

func (b *Book) index(orderNumber string) int {
	for i, a := range b.Entries {
		if a.Matches(orderNumber) {
			return i
		}
	}
	return -1
}

func OccupiedSlots(entries []Appointment, loc *time.Location) slot.Set {
	set := make(slot.Set, len(entries))
	for _, a := range entries {
		if s, ok := a.Slot(loc); ok {
			set.Add(s)
		}
	}
	return set
}

// AvailableSlots is the calendar for now minus every slot occupied in entries.
func AvailableSlots(cal slot.Calendar, now time.Time, entries []Appointment) []slot.Slot {
	return cal.Available(now, OccupiedSlots(entries, cal.Location))
}
