package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/event-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende a página de reserva: sem token, sem organização.
type PublicHandler struct {
	db           *gorm.DB
	create       *ucBooking.CreateBooking
	availability *ucBooking.GetAvailability
	log          *zap.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	create *ucBooking.CreateBooking,
	availability *ucBooking.GetAvailability,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		create:       create,
		availability: availability,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// BOOKING OPTIONS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBookingOptions(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var ev models.Event
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND deleted = ?", eventID, false).
		First(&ev).Error; err != nil {

		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")
		return
	}

	var options []models.EventBookingOption
	if err := h.db.WithContext(c.Request.Context()).
		Where("event_id = ? AND active = ?", ev.ID, true).
		Order("duration_minutes ASC").
		Find(&options).Error; err != nil {

		httperr.Internal(c, "failed_to_list_options", "Erro ao listar opções.")
		return
	}

	httpresp.List(c, options)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability devolve só os horários livres.
func (h *PublicHandler) Availability(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	in, ok := availabilityInput(c, eventID)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, slots)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if len(req.Guests) == 0 {
		httperr.BadRequest(c, "guest_required", "Informe ao menos um convidado.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		EventID:         eventID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Timezone:        req.Timezone,
		BookingOptionID: req.BookingOptionID,
		FormData:        req.FormData,
		Guests:          toGuestInputs(req.Guests),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse(out, req.Timezone))
}
