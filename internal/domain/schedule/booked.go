package schedule

import "github.com/jhonux/barber-api/internal/models"

// BookedTimes collects the second-truncated start times of the given
// appointments, keeping only those whose status passes the filter.
// Appointments whose stored time cannot be parsed are skipped.
func BookedTimes(apps []models.Appointment, keep StatusFilter) map[TimeOfDay]struct{} {
	booked := make(map[TimeOfDay]struct{}, len(apps))
	for _, ap := range apps {
		if !keep(Status(ap.Status)) {
			continue
		}
		t, err := ParseTimeOfDay(ap.AppointmentTime)
		if err != nil {
			continue
		}
		booked[t] = struct{}{}
	}
	return booked
}

// SubtractBooked removes booked times from an ascending slot list,
// preserving order.
func SubtractBooked(slots []TimeOfDay, booked map[TimeOfDay]struct{}) []TimeOfDay {
	free := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if _, taken := booked[s]; taken {
			continue
		}
		free = append(free, s)
	}
	return free
}
