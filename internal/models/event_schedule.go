package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventSchedule guarda a agenda semanal normalizada (uma por evento).
type EventSchedule struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	EventID uint           `gorm:"uniqueIndex;not null" json:"event_id"`
	Data    datatypes.JSON `gorm:"column:schedule" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
