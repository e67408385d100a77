package schedule

import (
	"testing"
	"time"

	"github.com/jhonux/barber-api/internal/models"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return v
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		date     string
		expected int
	}{
		{date: "2025-01-06", expected: 0}, // Monday
		{date: "2025-01-07", expected: 1},
		{date: "2025-01-10", expected: 4}, // Friday
		{date: "2025-01-11", expected: 5},
		{date: "2025-01-12", expected: 6}, // Sunday
	}

	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := Weekday(d); got != tc.expected {
			t.Errorf("Weekday(%s) = %d, expected %d", tc.date, got, tc.expected)
		}
	}
}

func TestEnumerateSlots(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		step     int
		expected []string
	}{
		{
			name:     "two hour window, 30 min step",
			start:    "09:00:00",
			end:      "11:00:00",
			step:     30,
			expected: []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00"},
		},
		{
			name:     "window not divisible by step keeps the overhanging slot",
			start:    "09:00:00",
			end:      "10:15:00",
			step:     30,
			expected: []string{"09:00:00", "09:30:00", "10:00:00"},
		},
		{
			name:     "empty window",
			start:    "09:00:00",
			end:      "09:00:00",
			step:     30,
			expected: nil,
		},
		{
			name:     "hourly granularity",
			start:    "08:00:00",
			end:      "12:00:00",
			step:     60,
			expected: []string{"08:00:00", "09:00:00", "10:00:00", "11:00:00"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := WorkingWindow{Start: mustTime(t, tc.start), End: mustTime(t, tc.end)}
			got := EnumerateSlots(w, tc.step)

			if len(got) != len(tc.expected) {
				t.Fatalf("got %d slots, expected %d (%v)", len(got), len(tc.expected), got)
			}
			for i, s := range got {
				if s.String() != tc.expected[i] {
					t.Errorf("slot %d = %s, expected %s", i, s, tc.expected[i])
				}
			}
		})
	}
}

func TestEnumerateSlotsMonotonic(t *testing.T) {
	w := WorkingWindow{Start: mustTime(t, "08:00:00"), End: mustTime(t, "18:00:00")}
	slots := EnumerateSlots(w, SlotMinutes)

	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	if slots[0] != w.Start {
		t.Errorf("first slot %s, expected window start %s", slots[0], w.Start)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i]-slots[i-1] != TimeOfDay(SlotMinutes*60) {
			t.Errorf("step between %s and %s is not %d minutes", slots[i-1], slots[i], SlotMinutes)
		}
	}
	last := slots[len(slots)-1]
	if !last.Before(w.End) {
		t.Errorf("last slot %s must be strictly before window end %s", last, w.End)
	}
}

func TestWindowFromAvailability(t *testing.T) {
	cases := []struct {
		name  string
		av    *models.Availability
		ok    bool
		start string
		end   string
	}{
		{
			name: "valid row",
			av:   &models.Availability{StartTime: "09:00:00", EndTime: "17:00:00"},
			ok:   true, start: "09:00:00", end: "17:00:00",
		},
		{
			name: "sub-second precision dropped",
			av:   &models.Availability{StartTime: "09:00:00.500000", EndTime: "17:00:00.250000"},
			ok:   true, start: "09:00:00", end: "17:00:00",
		},
		{name: "nil row", av: nil, ok: false},
		{name: "garbage times", av: &models.Availability{StartTime: "nope", EndTime: "17:00"}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := WindowFromAvailability(tc.av)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if w.Start.String() != tc.start || w.End.String() != tc.end {
				t.Errorf("window = %s-%s, expected %s-%s", w.Start, w.End, tc.start, tc.end)
			}
		})
	}
}
