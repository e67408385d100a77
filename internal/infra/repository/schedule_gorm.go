package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAvailability(
	ctx context.Context,
	ownerID uint,
	weekday int,
) (*models.Availability, error) {

	var av models.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_of_week = ?", ownerID, weekday).
		Order("id ASC").
		First(&av).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &av, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	organizationID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", serviceID, organizationID).
		First(&service).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND appointment_date = ?", ownerID, date).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if httperr.IsUniqueViolation(err) {
		// Two concurrent bookings passed the read check; the slot index
		// rejected the loser. Same outcome as the logical conflict.
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *ScheduleGormRepository) GetAppointmentForOwner(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, ownerID).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
