package appointment

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "3:04 PM"
)

var (
	ErrUnparseableDate = errors.New("unparseable appointment date")
	ErrUnparseableTime = errors.New("unparseable appointment time")
)

// FormatDate renders the stored Appointment_Date column.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders the stored Appointment_Time column.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// CombineDateTime rebuilds an instant from the stored date and time columns,
// interpreted as wall-clock values in loc.
//
// Dates: "YYYY-MM-DD" or "MM/DD/YYYY" (two-digit years are 20xx).
// Times: "h:mm AM/PM" or 24-hour "HH:mm[:ss]"; seconds are ignored.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	y, m, d, err := parseDate(strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := parseClock(strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	at := time.Date(y, time.Month(m), d, hour, minute, 0, 0, loc)
	// time.Date normalizes impossible days such as Feb 30 into the next month.
	if ay, am, ad := at.Date(); ay != y || int(am) != m || ad != d {
		return time.Time{}, ErrUnparseableDate
	}
	return at, nil
}

func parseDate(s string) (year, month, day int, err error) {
	var parts []string
	switch {
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
		if len(parts) != 3 {
			return 0, 0, 0, ErrUnparseableDate
		}
		parts = []string{parts[2], parts[0], parts[1]}
	case strings.Contains(s, "-"):
		// tolerate a trailing time portion such as "2025-11-13T00:00:00"
		if i := strings.IndexAny(s, "T "); i > 0 {
			s = s[:i]
		}
		parts = strings.Split(s, "-")
		if len(parts) != 3 {
			return 0, 0, 0, ErrUnparseableDate
		}
	default:
		return 0, 0, 0, ErrUnparseableDate
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, ErrUnparseableDate
		}
		nums[i] = n
	}
	year, month, day = nums[0], nums[1], nums[2]
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, ErrUnparseableDate
	}
	return year, month, day, nil
}

func parseClock(s string) (hour, minute int, err error) {
	lower := strings.ToLower(s)
	meridiem := ""
	if strings.HasSuffix(lower, "am") || strings.HasSuffix(lower, "pm") {
		meridiem = lower[len(lower)-2:]
		lower = strings.TrimSpace(lower[:len(lower)-2])
	}

	parts := strings.Split(lower, ":")
	switch {
	case len(parts) == 2:
	case len(parts) == 3 && meridiem == "":
		if sec, secErr := strconv.Atoi(parts[2]); secErr != nil || sec < 0 || sec > 59 {
			return 0, 0, ErrUnparseableTime
		}
	default:
		return 0, 0, ErrUnparseableTime
	}

	hour, hErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, mErr := strconv.Atoi(parts[1])
	if hErr != nil || mErr != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrUnparseableTime
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, 0, ErrUnparseableTime
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, 0, ErrUnparseableTime
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	}
	return hour, minute, nil
}
