package schedule

import (
	"time"

	"github.com/jhonux/barber-api/internal/models"
)

// SlotMinutes is the global slot granularity. Candidate slots never derive
// their size from the service being booked.
const SlotMinutes = 30

// WorkingWindow is the bounded range of a single working day,
// second-precision, end exclusive.
type WorkingWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Weekday maps a calendar date to the 0 = Monday ... 6 = Sunday convention
// used by every availability row.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WindowFromAvailability truncates an availability row to a second-precision
// working window. Rows with unparseable times yield no window.
func WindowFromAvailability(av *models.Availability) (WorkingWindow, bool) {
	if av == nil {
		return WorkingWindow{}, false
	}
	start, err := ParseTimeOfDay(av.StartTime)
	if err != nil {
		return WorkingWindow{}, false
	}
	end, err := ParseTimeOfDay(av.EndTime)
	if err != nil {
		return WorkingWindow{}, false
	}
	return WorkingWindow{Start: start, End: end}, true
}

// EnumerateSlots lists candidate start times: strictly ascending from the
// window start, fixed step, each strictly before the window end. The final
// slot may run past the end of the window; it is not clipped.
func EnumerateSlots(w WorkingWindow, granularityMinutes int) []TimeOfDay {
	var slots []TimeOfDay
	for cur := w.Start; cur.Before(w.End); cur = cur.AddMinutes(granularityMinutes) {
		slots = append(slots, cur)
	}
	return slots
}
