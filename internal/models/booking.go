package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID  uint  `gorm:"index" json:"organization_id"`
	EventID         uint  `gorm:"index:idx_bookings_event_start,priority:1;not null" json:"event_id"`
	BookingOptionID *uint `json:"booking_option_id"`

	StartTime time.Time `gorm:"index:idx_bookings_event_start,priority:2;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status    string         `gorm:"size:20;not null" json:"status"`
	Cancelled bool           `gorm:"not null" json:"cancelled"`
	FormData  datatypes.JSON `json:"form_data"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
