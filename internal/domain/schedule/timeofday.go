package schedule

import (
	"fmt"
	"strings"
)

// TimeOfDay is a second-precision time of day, stored as seconds since
// midnight. Sub-second fractions are dropped at parse time so two times
// differing only in microseconds compare equal.
type TimeOfDay int

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// ParseTimeOfDay accepts "15:04:05", "15:04" and either form with a
// fractional-second suffix, which is discarded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}

	var h, m, sec int
	switch strings.Count(s, ":") {
	case 1:
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
	case 2:
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
	default:
		return 0, fmt.Errorf("invalid time %q", s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	return NewTimeOfDay(h, m, sec), nil
}

func (t TimeOfDay) Clock() (hour, minute, second int) {
	return int(t) / 3600, (int(t) % 3600) / 60, int(t) % 60
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m*60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) String() string {
	h, m, s := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
