package models

import "time"

// Usuário da organização responsável por atender um evento.
type EventAssignee struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	EventID uint `gorm:"uniqueIndex:idx_event_assignees_event_user;not null" json:"event_id"`
	UserID  uint `gorm:"uniqueIndex:idx_event_assignees_event_user;index;not null" json:"user_id"`

	// quem atribuiu; nil quando veio de processo interno
	AssignedBy *uint `json:"assigned_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
