package schedule

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/models"
)

// fakeRepo is an in-memory Repository. It mirrors the store contract,
// including the unique (owner, date, time) rejection on insert.
type fakeRepo struct {
	mu sync.Mutex

	availabilities []models.Availability
	services       []models.Service
	appointments   []models.Appointment

	nextID uint

	failListAppointments error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) GetAvailability(_ context.Context, ownerID uint, weekday int) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.availabilities {
		av := f.availabilities[i]
		if av.UserID == ownerID && av.DayOfWeek == weekday {
			return &av, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetService(_ context.Context, organizationID, serviceID uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.services {
		s := f.services[i]
		if s.ID == serviceID && s.OrganizationID == organizationID {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, ownerID uint, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failListAppointments != nil {
		return nil, f.failListAppointments
	}

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == ownerID && ap.AppointmentDate == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.UserID == ap.UserID &&
			existing.AppointmentDate == ap.AppointmentDate &&
			existing.AppointmentTime == ap.AppointmentTime {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForOwner(_ context.Context, appointmentID, ownerID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		ap := f.appointments[i]
		if ap.ID == appointmentID && ap.UserID == ownerID {
			return &ap, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var _ domain.Repository = (*fakeRepo)(nil)
