package slot

import (
	"errors"
	"strings"
	"time"
)

// Layout is the canonical wire form of a slot: ISO-8601 UTC with a literal trailing Z.
const Layout = "2006-01-02T15:04:05Z"

var (
	ErrInvalidFormat = errors.New("slot must be an ISO-8601 UTC timestamp ending in Z")
	ErrEmpty         = errors.New("slot is required")
)

// Slot is a quantized pickup instant. The zero value means "no slot".
type Slot struct {
	at time.Time
}

func New(t time.Time) Slot {
	return Slot{at: t.UTC().Truncate(time.Second)}
}

// Parse accepts "2024-01-01T09:00:00Z" and fractional forms such as "2024-01-01T09:00:00.000Z".
func Parse(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Slot{}, ErrEmpty
	}
	if !strings.HasSuffix(s, "Z") {
		return Slot{}, ErrInvalidFormat
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Slot{}, ErrInvalidFormat
	}
	return New(t), nil
}

func MustParse(s string) Slot {
	sl, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sl
}

func (s Slot) Time() time.Time {
	return s.at
}

func (s Slot) IsZero() bool {
	return s.at.IsZero()
}

func (s Slot) Equal(other Slot) bool {
	return s.at.Equal(other.at)
}

func (s Slot) Before(other Slot) bool {
	return s.at.Before(other.at)
}

func (s Slot) In(loc *time.Location) time.Time {
	return s.at.In(loc)
}

func (s Slot) String() string {
	if s.IsZero() {
		return ""
	}
	return s.at.Format(Layout)
}

func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Slot) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set is a membership set of slots.
type Set map[Slot]struct{}

func NewSet(slots ...Slot) Set {
	set := make(Set, len(slots))
	for _, s := range slots {
		set.Add(s)
	}
	return set
}

func (set Set) Add(s Slot) {
	set[New(s.at)] = struct{}{}
}

func (set Set) Has(s Slot) bool {
	_, ok := set[New(s.at)]
	return ok
}

func (set Set) Len() int {
	return len(set)
}
