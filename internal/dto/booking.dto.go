package dto

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type GuestDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type BookingDTO struct {
	ID              uint           `json:"id"`
	EventID         uint           `json:"event_id"`
	BookingOptionID *uint          `json:"booking_option_id"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         time.Time      `json:"end_time"`
	Status          string         `json:"status"`
	Cancelled       bool           `json:"cancelled"`
	FormData        map[string]any `json:"form_data"`
	Guests          []GuestDTO     `json:"guests"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewBookingDTO apresenta os horários no fuso do evento.
func NewBookingDTO(b models.Booking, guests []models.Guest, loc *time.Location) BookingDTO {
	formData := map[string]any{}
	if len(b.FormData) > 0 {
		_ = json.Unmarshal(b.FormData, &formData)
	}

	out := BookingDTO{
		ID:              b.ID,
		EventID:         b.EventID,
		BookingOptionID: b.BookingOptionID,
		StartTime:       b.StartTime.In(loc),
		EndTime:         b.EndTime.In(loc),
		Status:          b.Status,
		Cancelled:       b.Cancelled,
		FormData:        formData,
		Guests:          make([]GuestDTO, 0, len(guests)),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	for _, g := range guests {
		out.Guests = append(out.Guests, GuestDTO{
			ID:    g.ID,
			Name:  g.Name,
			Email: g.Email,
			Phone: g.Phone,
		})
	}

	return out
}
