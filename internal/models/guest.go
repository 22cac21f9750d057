package models

import "time"

type Guest struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;not null" json:"booking_id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
