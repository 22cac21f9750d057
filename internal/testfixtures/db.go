// Package testfixtures monta um banco SQLite em memória com o schema da
// aplicação e oferece atalhos para popular eventos, agendas e agendamentos.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

var dbSeq int64

// OpenDB abre um banco isolado por teste. Uma única conexão: o SQLite
// não tem FOR UPDATE e as escritas concorrentes ficam serializadas no pool.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:scheduler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// At monta um instante em UTC.
func At(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func CreateEvent(t testing.TB, db *gorm.DB, organizationID uint, tz string) *models.Event {
	t.Helper()

	if tz == "" {
		tz = "UTC"
	}

	ev := &models.Event{
		OrganizationID: organizationID,
		Name:           "Consultoria",
		Slug:           fmt.Sprintf("consultoria-%d", atomic.AddInt64(&dbSeq, 1)),
		Timezone:       tz,
	}
	if err := db.Create(ev).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return ev
}

func SaveSchedule(t testing.TB, db *gorm.DB, eventID uint, ws schedule.WeeklySchedule) {
	t.Helper()

	data, err := schedule.Encode(ws)
	if err != nil {
		t.Fatalf("encode schedule: %v", err)
	}

	if err := db.Create(&models.EventSchedule{
		EventID: eventID,
		Data:    datatypes.JSON(data),
	}).Error; err != nil {
		t.Fatalf("save schedule: %v", err)
	}
}

func CreateBookingOption(t testing.TB, db *gorm.DB, eventID uint, minutes int, active bool) *models.EventBookingOption {
	t.Helper()

	opt := &models.EventBookingOption{
		EventID:         eventID,
		Name:            fmt.Sprintf("%d minutos", minutes),
		DurationMinutes: minutes,
		Active:          active,
	}
	if err := db.Create(opt).Error; err != nil {
		t.Fatalf("create booking option: %v", err)
	}
	return opt
}

func CreateBooking(t testing.TB, db *gorm.DB, eventID uint, start, end time.Time, cancelled bool) *models.Booking {
	t.Helper()

	status := "confirmed"
	if cancelled {
		status = "cancelled"
	}

	b := &models.Booking{
		EventID:   eventID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Status:    status,
		Cancelled: cancelled,
		FormData:  datatypes.JSON("{}"),
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}
