package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/jhonux/barber-api/internal/domain/schedule"
	"github.com/jhonux/barber-api/internal/httperr"
	"github.com/jhonux/barber-api/internal/httpresp"
	"github.com/jhonux/barber-api/internal/middleware"
	"github.com/jhonux/barber-api/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// --------- Requests ---------

type CreateAvailabilityRequest struct {
	// 0 = segunda ... 6 = domingo
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// --------- Handlers ---------

func (h *AvailabilityHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var availabilities []models.Availability
	if err := h.db.
		Where("user_id = ?", barberID).
		Order("day_of_week ASC, start_time ASC").
		Find(&availabilities).Error; err != nil {

		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar disponibilidades.")
		return
	}

	httpresp.List(c, availabilities)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Hora inicial inválida.")
		return
	}

	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Hora final inválida.")
		return
	}

	av := models.Availability{
		UserID:    barberID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: start.String(),
		EndTime:   end.String(),
	}

	if err := h.db.Create(&av).Error; err != nil {
		httperr.Internal(c, "failed_to_create_availability", "Erro ao criar disponibilidade.")
		return
	}

	c.JSON(http.StatusCreated, av)
}

// Delete removes one availability row. Rows are never edited in place: the
// frontend deletes and recreates.
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id := c.Param("id")

	var av models.Availability
	if err := h.db.
		Where("id = ? AND user_id = ?", id, barberID).
		First(&av).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "availability_not_found", "Disponibilidade não encontrada")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar disponibilidade.")
		return
	}

	if err := h.db.Delete(&av).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Erro ao remover disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, av)
}
