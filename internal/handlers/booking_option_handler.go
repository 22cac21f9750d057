package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type BookingOptionHandler struct {
	db *gorm.DB
}

func NewBookingOptionHandler(db *gorm.DB) *BookingOptionHandler {
	return &BookingOptionHandler{db: db}
}

// --------- Requests ---------

type CreateBookingOptionRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=1440"`
}

type UpdateBookingOptionRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// eventInOrganization confirma que o evento é da organização do token.
func (h *BookingOptionHandler) eventInOrganization(c *gin.Context) (uint, bool) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return 0, false
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Event{}).
		Where("id = ? AND organization_id = ? AND deleted = ?", eventID, organizationID(c), false).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_get_event", "Erro ao buscar o evento.")
		return 0, false
	}
	if count == 0 {
		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")
		return 0, false
	}

	return eventID, true
}

// --------- Handlers ---------

func (h *BookingOptionHandler) List(c *gin.Context) {
	eventID, ok := h.eventInOrganization(c)
	if !ok {
		return
	}

	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio

	q := h.db.WithContext(c.Request.Context()).Where("event_id = ?", eventID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var options []models.EventBookingOption
	if err := q.Order("id ASC").Find(&options).Error; err != nil {
		httperr.Internal(c, "failed_to_list_options", "Erro ao listar opções.")
		return
	}

	c.JSON(http.StatusOK, options)
}

func (h *BookingOptionHandler) Create(c *gin.Context) {
	eventID, ok := h.eventInOrganization(c)
	if !ok {
		return
	}

	var req CreateBookingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	option := models.EventBookingOption{
		EventID:         eventID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&option).Error; err != nil {
		httperr.Internal(c, "failed_to_create_option", "Erro ao criar opção.")
		return
	}

	c.JSON(http.StatusCreated, option)
}

func (h *BookingOptionHandler) Update(c *gin.Context) {
	eventID, ok := h.eventInOrganization(c)
	if !ok {
		return
	}

	optionID, ok := idParam(c, "optionId")
	if !ok {
		return
	}

	var option models.EventBookingOption
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND event_id = ?", optionID, eventID).
		First(&option).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "booking_option_not_found", "Opção não encontrada.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_option", "Erro ao buscar opção.")
		return
	}

	var req UpdateBookingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		option.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		option.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 || *req.DurationMinutes > 1440 {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
		option.DurationMinutes = *req.DurationMinutes
	}
	if req.Active != nil {
		option.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&option).Error; err != nil {
		httperr.Internal(c, "failed_to_update_option", "Erro ao salvar opção.")
		return
	}

	c.JSON(http.StatusOK, option)
}
