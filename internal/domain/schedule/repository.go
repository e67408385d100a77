package schedule

import (
	"context"

	"github.com/jhonux/barber-api/internal/models"
)

// DateFormat is the storage layout of appointment dates.
const DateFormat = "2006-01-02"

// Repository is the store boundary the slot math and conflict check run
// against. Implementations return (nil, nil) for point lookups that find
// nothing; an error always means the store itself failed.
type Repository interface {
	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		ownerID uint,
		weekday int,
	) (*models.Availability, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		organizationID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment --------
	ListAppointmentsForDay(
		ctx context.Context,
		ownerID uint,
		date string,
	) ([]models.Appointment, error)

	// CreateAppointment must be all-or-nothing and must surface a
	// time_conflict business error when the (owner, date, time) unique
	// constraint rejects the row.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
