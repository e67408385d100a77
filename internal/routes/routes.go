package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/jhonux/barber-api/internal/audit"
	"github.com/jhonux/barber-api/internal/config"
	"github.com/jhonux/barber-api/internal/handlers"
	infraRepo "github.com/jhonux/barber-api/internal/infra/repository"
	"github.com/jhonux/barber-api/internal/middleware"
	ucSchedule "github.com/jhonux/barber-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var authLimiter gin.HandlerFunc
	if rdb != nil {
		authLimiter = middleware.NewRateLimiter(rdb, 20, time.Minute, "rl:auth").Middleware()
	} else {
		authLimiter = func(c *gin.Context) { c.Next() }
	}

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	bookUC := ucSchedule.NewBookAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	freeSlotsUC := ucSchedule.NewFreeSlots(
		scheduleRepo,
	)

	updateStatusUC := ucSchedule.NewUpdateAppointmentStatus(
		scheduleRepo,
		auditDispatcher,
	)

	deleteUC := ucSchedule.NewDeleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		freeSlotsUC,
		updateStatusUC,
		deleteUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authLimiter, authHandler.Register)
		api.POST("/auth/login", authLimiter, authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PUT("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/availability", availabilityHandler.List)
			secured.POST("/me/availability", availabilityHandler.Create)
			secured.DELETE("/me/availability/:id", availabilityHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/available", appointmentHandler.Available)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
