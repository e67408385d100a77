package schedule

import (
	"context"
	"time"

	"github.com/jhonux/barber-api/internal/audit"
	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	OwnerID        uint
	OrganizationID uint

	ServiceID uint

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date string // YYYY-MM-DD
	Time string // HH:mm or HH:mm:ss
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the check-then-reserve sequence: the service must exist, the
// second-truncated time must not collide with any appointment of any status
// on that date, and only then is the row written. The read check is not
// atomic against concurrent bookings; the store's unique constraint closes
// that window and its violation comes back as the same time_conflict.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	day, err := time.Parse(domain.DateFormat, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	service, err := uc.repo.GetService(ctx, in.OrganizationID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	apps, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.OwnerID,
		day.Format(domain.DateFormat),
	)
	if err != nil {
		return nil, err
	}

	booked := domain.BookedTimes(apps, domain.AnyStatus)
	if _, taken := booked[slot]; taken {
		uc.audit.Dispatch(audit.Event{
			OrganizationID: in.OrganizationID,
			UserID:         &in.OwnerID,
			Action:         "appointment_conflict",
			Entity:         "appointment",
			Metadata: map[string]any{
				"date": in.Date,
				"time": slot.String(),
			},
		})
		return nil, httperr.ErrBusiness("time_conflict")
	}

	ap := &models.Appointment{
		UserID:          in.OwnerID,
		ServiceID:       service.ID,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		AppointmentDate: day.Format(domain.DateFormat),
		AppointmentTime: slot.String(),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.OwnerID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
