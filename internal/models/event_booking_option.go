package models

import "time"

type EventBookingOption struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	EventID uint `gorm:"index;not null" json:"event_id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Description     string `gorm:"size:255" json:"description"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`
	Active          bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
