package models

import "time"

// Contato sem login, único por organização + email
type Contact struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `gorm:"uniqueIndex:idx_contacts_org_email;not null" json:"organization_id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex:idx_contacts_org_email;not null" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`

	LastEventID     *uint      `json:"last_event_id"`
	LastBookingID   *uint      `json:"last_booking_id"`
	LastAssigneeID  *uint      `gorm:"index" json:"last_assignee_id"`
	LastInteraction *time.Time `json:"last_interaction"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
