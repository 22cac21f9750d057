package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/timezone"
)

// EventHandler cobre a configuração do evento usada pelo agendamento
// (nome e fuso). Criação de eventos fica fora deste serviço.
type EventHandler struct {
	db *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{db: db}
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Timezone    *string `json:"timezone"`
}

// findEvent responde 404/500 por conta própria e devolve ok=false nesses casos.
func (h *EventHandler) findEvent(c *gin.Context) (*models.Event, bool) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}

	var ev models.Event
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND organization_id = ? AND deleted = ?", eventID, organizationID(c), false).
		First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")
		return nil, false
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_event", "Erro ao buscar o evento.")
		return nil, false
	}

	return &ev, true
}

func (h *EventHandler) Get(c *gin.Context) {
	ev, ok := h.findEvent(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	ev, ok := h.findEvent(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome obrigatório.")
			return
		}
		ev.Name = name
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		ev.Timezone = *req.Timezone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(ev).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Erro ao salvar o evento.")
		return
	}

	c.JSON(http.StatusOK, ev)
}
