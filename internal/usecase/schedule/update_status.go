package schedule

import (
	"context"

	"github.com/jhonux/barber-api/internal/audit"
	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets the status of an appointment owned by the given barber. The
// status string is free-form; cancelling does not free the slot.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	organizationID uint,
	ownerID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	previous := ap.Status
	ap.Status = status

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	action := "appointment_status_changed"
	if status == string(domain.StatusCancelled) {
		action = "appointment_cancelled"
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: organizationID,
		UserID:         &ownerID,
		Action:         action,
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   status,
		},
	})

	return ap, nil
}
