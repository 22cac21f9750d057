package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/dto"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/event-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	update       *ucBooking.UpdateBooking
	cancel       *ucBooking.CancelBooking
	complete     *ucBooking.CompleteBooking
	remove       *ucBooking.DeleteBooking
	get          *ucBooking.GetBooking
	list         *ucBooking.ListBookings
	availability *ucBooking.GetAvailability
	log          *zap.Logger
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	remove *ucBooking.DeleteBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	availability *ucBooking.GetAvailability,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		update:       update,
		cancel:       cancel,
		complete:     complete,
		remove:       remove,
		get:          get,
		list:         list,
		availability: availability,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GuestRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateBookingRequest struct {
	StartTime       string         `json:"start_time" binding:"required"`
	EndTime         string         `json:"end_time" binding:"required"`
	Timezone        string         `json:"timezone"`
	BookingOptionID *uint          `json:"booking_option_id"`
	FormData        map[string]any `json:"form_data"`
	Guests          []GuestRequest `json:"guests"`
}

type UpdateBookingRequest struct {
	StartTime       *string         `json:"start_time"`
	EndTime         *string         `json:"end_time"`
	Timezone        string          `json:"timezone"`
	Status          *string         `json:"status"`
	Cancelled       *bool           `json:"cancelled"`
	BookingOptionID *uint           `json:"booking_option_id"`
	FormData        map[string]any  `json:"form_data"`
	Guests          *[]GuestRequest `json:"guests"`
}

func toGuestInputs(reqs []GuestRequest) []ucBooking.GuestInput {
	out := make([]ucBooking.GuestInput, 0, len(reqs))
	for _, g := range reqs {
		out = append(out, ucBooking.GuestInput{Name: g.Name, Email: g.Email, Phone: g.Phone})
	}
	return out
}

// bookingResponse usa o fuso pedido pelo cliente, senão UTC.
func bookingResponse(out *ucBooking.BookingOutput, tz string) dto.BookingDTO {
	return dto.NewBookingDTO(*out.Booking, out.Guests, timezone.Location(tz))
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		OrganizationID:  organizationID(c),
		UserID:          userID(c),
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

// ======================================================
// GET / LIST
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), organizationID(c), bookingID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, bookingResponse(out, c.Query("timezone")))
}

func (h *BookingHandler) ListByEvent(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	from := c.Query("from")
	if from == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), ucBooking.ListBookingsInput{
		OrganizationID:   organizationID(c),
		EventID:          eventID,
		From:             from,
		To:               c.Query("to"),
		IncludeCancelled: c.Query("include_cancelled") == "true",
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// AVAILABILITY (PAINEL)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	in, ok := availabilityInput(c, eventID)
	if !ok {
		return
	}
	in.OrganizationID = organizationID(c)
	in.IncludeBooked = c.Query("include_booked") == "true"

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, slots)
}

func availabilityInput(c *gin.Context, eventID uint) (ucBooking.AvailabilityInput, bool) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return ucBooking.AvailabilityInput{}, false
	}

	duration, ok := intQuery(c, "duration")
	if !ok {
		return ucBooking.AvailabilityInput{}, false
	}

	optionID, ok := optionalUintQuery(c, "booking_option_id")
	if !ok {
		return ucBooking.AvailabilityInput{}, false
	}

	return ucBooking.AvailabilityInput{
		EventID:         eventID,
		Date:            date,
		DurationMinutes: duration,
		BookingOptionID: optionID,
	}, true
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucBooking.UpdateBookingInput{
		OrganizationID:  organizationID(c),
		UserID:          userID(c),
		BookingID:       bookingID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Timezone:        req.Timezone,
		Status:          req.Status,
		Cancelled:       req.Cancelled,
		BookingOptionID: req.BookingOptionID,
		FormData:        req.FormData,
	}
	if req.Guests != nil {
		guests := toGuestInputs(*req.Guests)
		in.Guests = &guests
	}

	out, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, bookingResponse(out, req.Timezone))
}

// ======================================================
// CANCEL / COMPLETE / DELETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancel.Execute)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.complete.Execute)
}

type statusAction func(ctx context.Context, organizationID uint, userID *uint, bookingID uint) (*models.Booking, error)

func (h *BookingHandler) changeStatus(c *gin.Context, action statusAction) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := action(c.Request.Context(), organizationID(c), userID(c), bookingID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTO(*b, nil, timezone.Location(c.Query("timezone"))))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), organizationID(c), userID(c), bookingID); err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
