package booking

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/testfixtures"
)

// 2025-03-10 é uma segunda-feira
const monday = "2025-03-10"

type env struct {
	db     *gorm.DB
	repo   *repository.BookingGormRepository
	locker lock.Locker
	event  *models.Event
}

// newEnv cria um evento da organização 1 com a agenda padrão e almoço 12:00-13:00 na segunda.
func newEnv(t *testing.T) *env {
	t.Helper()

	db := testfixtures.OpenDB(t)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")

	ws := schedule.Default()
	day := ws[time.Monday]
	day.Breaks = []schedule.Break{{StartTime: 12 * 3600, EndTime: 13 * 3600}}
	ws[time.Monday] = day
	testfixtures.SaveSchedule(t, db, ev.ID, ws)

	return &env{
		db:     db,
		repo:   repository.NewBookingGormRepository(db),
		locker: lock.NewLocalLocker(5 * time.Second),
		event:  ev,
	}
}

func (e *env) create() *CreateBooking {
	return NewCreateBooking(e.repo, e.locker, nil, zap.NewNop())
}

func (e *env) update() *UpdateBooking {
	return NewUpdateBooking(e.repo, e.locker, nil, zap.NewNop())
}

func (e *env) countBookings(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.Booking{}).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}

func (e *env) countGuests(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.Guest{}).Count(&n).Error; err != nil {
		t.Fatalf("count guests: %v", err)
	}
	return n
}

func slot(hhmm string) string {
	return monday + "T" + hhmm + ":00Z"
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func expectKind(t *testing.T, err error, kind httperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := httperr.KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}
