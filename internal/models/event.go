package models

import "time"

// Event pertence a uma organização; o agendamento usa o fuso do evento.
type Event struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	OrganizationID uint  `gorm:"index;not null" json:"organization_id"`
	TeamID         *uint `json:"team_id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Slug        string `gorm:"size:100;index" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	Timezone    string `gorm:"size:64;default:'UTC'" json:"timezone"`
	Deleted     bool   `gorm:"not null" json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
