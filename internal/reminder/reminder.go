package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/jhonux/barber-api/internal/audit"
	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/models"
)

// Service audit-logs a reminder for every non-cancelled appointment falling
// on the next day, once per night. Delivery (email/SMS) is handled by a
// separate consumer reading the audit trail.
type Service struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cron  *cron.Cron
}

func NewService(db *gorm.DB, dispatcher *audit.Dispatcher) *Service {
	return &Service{
		db:    db,
		audit: dispatcher,
		cron:  cron.New(),
	}
}

func (s *Service) Start() {
	// todo dia às 19h, lembretes do dia seguinte
	if _, err := s.cron.AddFunc("0 19 * * *", s.processUpcoming); err != nil {
		log.Printf("reminder: failed to schedule: %v", err)
		return
	}

	s.cron.Start()
	log.Println("Reminder scheduler started")
}

func (s *Service) Stop() {
	s.cron.Stop()
}

func (s *Service) processUpcoming() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)

	var apps []models.Appointment
	if err := s.db.
		Preload("User").
		Where("appointment_date = ? AND status <> ?", tomorrow, string(domain.StatusCancelled)).
		Order("user_id ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {

		log.Printf("reminder: failed to list appointments: %v", err)
		return
	}

	for i := range apps {
		ap := &apps[i]
		s.audit.Dispatch(audit.Event{
			OrganizationID: ap.User.OrganizationID,
			UserID:         &ap.UserID,
			Action:         "appointment_reminder",
			Entity:         "appointment",
			EntityID:       &ap.ID,
			Metadata: map[string]any{
				"client_name": ap.ClientName,
				"date":        ap.AppointmentDate,
				"time":        ap.AppointmentTime,
			},
		})
	}

	log.Printf("reminder: dispatched %d reminders for %s", len(apps), tomorrow)
}
