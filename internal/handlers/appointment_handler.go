package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/httpresp"
	"github.com/jhonux/barber-api/internal/middleware"
	"github.com/jhonux/barber-api/internal/models"
	ucSchedule "github.com/jhonux/barber-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	bookUC         *ucSchedule.BookAppointment
	freeSlotsUC    *ucSchedule.FreeSlots
	updateStatusUC *ucSchedule.UpdateAppointmentStatus
	deleteUC       *ucSchedule.DeleteAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	bookUC *ucSchedule.BookAppointment,
	freeSlotsUC *ucSchedule.FreeSlots,
	updateStatusUC *ucSchedule.UpdateAppointmentStatus,
	deleteUC *ucSchedule.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		bookUC:         bookUC,
		freeSlotsUC:    freeSlotsUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	ClientPhone string `json:"client_phone"`

	ServiceID uint `json:"service_id" binding:"required"`

	AppointmentDate string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" binding:"required"` // HH:mm:ss
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucSchedule.BookAppointmentInput{
		OwnerID:        barberID,
		OrganizationID: organizationID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Date:           req.AppointmentDate,
		Time:           req.AppointmentTime,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
		case httperr.IsBusiness(err, "time_conflict"):
			httperr.Conflict(c, "time_conflict", "Horário ocupado")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.
		Preload("Service").
		Where("user_id = ?", barberID)

	if dateStr := c.Query("date"); dateStr != "" {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("appointment_date = ?", dateStr)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		organizationID,
		barberID,
		uint(id),
		req.Status,
	)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.deleteUC.Execute(
		c.Request.Context(),
		organizationID,
		barberID,
		uint(id),
	)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AVAILABLE TIMES
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.freeSlotsUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_availability", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, slots)
}
