package appointment

import (
	"strings"
	"time"

	"pickup-scheduler/internal/domain/slot"
)

// Column names of the appointments file, in write order.
const (
	ColumnOrderNumber   = "OrderNumber"
	ColumnDate          = "Appointment_Date"
	ColumnTime          = "Appointment_Time"
	ColumnCustomerEmail = "Customer_Email"
	ColumnCreatedTime   = "Created_Time"
)

var Columns = []string{ColumnOrderNumber, ColumnDate, ColumnTime, ColumnCustomerEmail, ColumnCreatedTime}

// Appointment is one row of the appointments file. Date and Time hold the
// stored text as-is so rows written by other tools survive a round trip.
type Appointment struct {
	OrderNumber   string
	Date          string
	Time          string
	CustomerEmail string
	CreatedTime   string
	// Extra keeps values of non-standard columns keyed by header.
	Extra map[string]string
}

func New(orderNumber string, s slot.Slot, customerEmail string, createdAt time.Time, loc *time.Location) Appointment {
	a := Appointment{
		OrderNumber:   strings.TrimSpace(orderNumber),
		CustomerEmail: strings.TrimSpace(customerEmail),
		CreatedTime:   createdAt.UTC().Format(time.RFC3339Nano),
	}
	a.setSlot(s, loc)
	return a
}

// FromRecord maps a header-keyed row onto an Appointment.
func FromRecord(rec map[string]string) Appointment {
	a := Appointment{
		OrderNumber:   strings.TrimSpace(rec[ColumnOrderNumber]),
		Date:          strings.TrimSpace(rec[ColumnDate]),
		Time:          strings.TrimSpace(rec[ColumnTime]),
		CustomerEmail: strings.TrimSpace(rec[ColumnCustomerEmail]),
		CreatedTime:   strings.TrimSpace(rec[ColumnCreatedTime]),
	}
	for k, v := range rec {
		if isStandardColumn(k) {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]string)
		}
		a.Extra[k] = v
	}
	return a
}

func (a Appointment) Record() map[string]string {
	rec := make(map[string]string, len(Columns)+len(a.Extra))
	for k, v := range a.Extra {
		rec[k] = v
	}
	rec[ColumnOrderNumber] = a.OrderNumber
	rec[ColumnDate] = a.Date
	rec[ColumnTime] = a.Time
	rec[ColumnCustomerEmail] = a.CustomerEmail
	rec[ColumnCreatedTime] = a.CreatedTime
	return rec
}

// HasSchedule reports whether both the date and time columns are filled.
func (a Appointment) HasSchedule() bool {
	return a.Date != "" && a.Time != ""
}

// IsComplete reports whether the row carries the fields required to be listed.
func (a Appointment) IsComplete() bool {
	return a.OrderNumber != "" && a.HasSchedule()
}

func (a Appointment) Matches(orderNumber string) bool {
	return a.OrderNumber != "" && a.OrderNumber == strings.TrimSpace(orderNumber)
}

// Slot reconstructs the booked instant. ok is false for unparseable rows.
func (a Appointment) Slot(loc *time.Location) (s slot.Slot, ok bool) {
	if !a.HasSchedule() {
		return slot.Slot{}, false
	}
	t, err := CombineDateTime(a.Date, a.Time, loc)
	if err != nil {
		return slot.Slot{}, false
	}
	return slot.New(t), true
}

// Display renders "<date> at <time>".
func (a Appointment) Display() string {
	return a.Date + " at " + a.Time
}

// Reschedule moves the appointment, keeping the customer email and creation time.
func (a *Appointment) Reschedule(s slot.Slot, now time.Time, loc *time.Location) {
	a.setSlot(s, loc)
	if a.CreatedTime == "" {
		a.CreatedTime = now.UTC().Format(time.RFC3339Nano)
	}
}

func (a *Appointment) setSlot(s slot.Slot, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	local := s.In(loc)
	a.Date = FormatDate(local)
	a.Time = FormatTime(local)
}

func isStandardColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}
