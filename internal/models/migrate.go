package models

import "gorm.io/gorm"

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&EventSchedule{},
		&EventBookingOption{},
		&EventAssignee{},
		&Booking{},
		&Guest{},
		&Contact{},
		&AuditLog{},
	)
}
