package schedule

import (
	"testing"

	"github.com/jhonux/barber-api/internal/models"
)

func TestBookedTimesStatusBlind(t *testing.T) {
	apps := []models.Appointment{
		{AppointmentTime: "09:00:00", Status: "pending"},
		{AppointmentTime: "10:00:00", Status: "cancelled"},
		{AppointmentTime: "10:30:00.123456", Status: "completed"},
		{AppointmentTime: "broken", Status: "pending"},
	}

	booked := BookedTimes(apps, AnyStatus)

	if len(booked) != 3 {
		t.Fatalf("got %d booked times, expected 3", len(booked))
	}
	for _, s := range []string{"09:00:00", "10:00:00", "10:30:00"} {
		if _, ok := booked[mustTime(t, s)]; !ok {
			t.Errorf("expected %s to be booked", s)
		}
	}
}

func TestBookedTimesFilter(t *testing.T) {
	apps := []models.Appointment{
		{AppointmentTime: "09:00:00", Status: "pending"},
		{AppointmentTime: "10:00:00", Status: "cancelled"},
	}

	booked := BookedTimes(apps, ExcludeCancelled)

	if len(booked) != 1 {
		t.Fatalf("got %d booked times, expected 1", len(booked))
	}
	if _, ok := booked[mustTime(t, "10:00:00")]; ok {
		t.Error("cancelled appointment should pass through ExcludeCancelled")
	}
}

func TestSubtractBooked(t *testing.T) {
	w := WorkingWindow{Start: mustTime(t, "09:00:00"), End: mustTime(t, "11:00:00")}
	slots := EnumerateSlots(w, 30)

	booked := map[TimeOfDay]struct{}{
		mustTime(t, "10:00:00"): {},
	}

	free := SubtractBooked(slots, booked)

	expected := []string{"09:00:00", "09:30:00", "10:30:00"}
	if len(free) != len(expected) {
		t.Fatalf("got %v, expected %v", free, expected)
	}
	for i, s := range free {
		if s.String() != expected[i] {
			t.Errorf("free[%d] = %s, expected %s", i, s, expected[i])
		}
	}
}
