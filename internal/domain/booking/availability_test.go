package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// 2025-03-10 é uma segunda-feira
func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func tod(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func weekWithMonday(day schedule.DaySchedule) schedule.WeeklySchedule {
	ws := schedule.Default()
	ws[time.Monday] = day
	return ws
}

func nineToFive(t *testing.T, breaks ...schedule.Break) schedule.WeeklySchedule {
	if breaks == nil {
		breaks = []schedule.Break{}
	}
	return weekWithMonday(schedule.DaySchedule{
		Enabled:   true,
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "17:00"),
		Breaks:    breaks,
	})
}

func lunch(t *testing.T) schedule.Break {
	return schedule.Break{StartTime: tod(t, "12:00"), EndTime: tod(t, "13:00")}
}

func TestIsAvailable_DisabledDayAlwaysFalse(t *testing.T) {
	ws := nineToFive(t)
	day := ws[time.Monday]
	day.Enabled = false
	ws[time.Monday] = day

	for h := 0; h < 23; h++ {
		if IsAvailable(ws, at(h, 0), at(h, 30), nil, nil) {
			t.Fatalf("expected %02d:00 unavailable on disabled day", h)
		}
	}
}

func TestIsAvailable_WorkingHoursBounds(t *testing.T) {
	ws := nineToFive(t)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"first slot", at(9, 0), at(9, 30), true},
		{"before opening", at(8, 30), at(9, 0), false},
		{"past closing", at(16, 30), at(17, 30), false},
		{"ends at closing", at(16, 30), at(17, 0), true},
		{"empty range", at(10, 0), at(10, 0), false},
		{"inverted range", at(11, 0), at(10, 0), false},
	}

	for _, tc := range cases {
		if got := IsAvailable(ws, tc.start, tc.end, nil, nil); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsAvailable_Breaks(t *testing.T) {
	ws := nineToFive(t, lunch(t))

	cases := []struct {
		start, end time.Time
		want       bool
	}{
		{at(11, 30), at(12, 30), false},
		{at(13, 0), at(13, 30), true},
		{at(12, 0), at(13, 0), false},
		{at(11, 30), at(12, 0), true},
	}

	for _, tc := range cases {
		if got := IsAvailable(ws, tc.start, tc.end, nil, nil); got != tc.want {
			t.Fatalf("%s-%s: expected %v, got %v", tc.start.Format("15:04"), tc.end.Format("15:04"), tc.want, got)
		}
	}
}

func TestIsAvailable_UsesLocalWeekday(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	ws := nineToFive(t)

	// segunda 10:00 local = segunda 13:00 UTC
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	if !IsAvailable(ws, start, start.Add(30*time.Minute), nil, nil) {
		t.Fatalf("expected monday 10:00 local to be available")
	}

	// domingo 22:00 local = segunda 01:00 UTC; domingo está desativado
	sunday := time.Date(2025, 3, 9, 22, 0, 0, 0, loc)
	if IsAvailable(ws, sunday, sunday.Add(30*time.Minute), nil, nil) {
		t.Fatalf("expected sunday local to be unavailable")
	}
}

// Só o horário do dia é comparado: um fim depois da meia-noite passa se o
// relógio do fim cair dentro do expediente do dia de início.
func TestIsAvailable_CrossingMidnightComparesClockOnly(t *testing.T) {
	ws := nineToFive(t)

	start := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
	if !IsAvailable(ws, start, time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC), nil, nil) {
		t.Fatalf("expected monday 16:30 to tuesday 00:30 accepted by clock comparison")
	}

	// relógio do fim (17:30) fora do expediente
	if IsAvailable(ws, start, time.Date(2025, 3, 11, 17, 30, 0, 0, time.UTC), nil, nil) {
		t.Fatalf("expected end clock 17:30 to be rejected")
	}

	// o dia da semana vem do início: domingo desativado
	sunday := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	if IsAvailable(ws, sunday, sunday.Add(11*time.Hour), nil, nil) {
		t.Fatalf("expected range starting on sunday to be rejected")
	}
}

func TestIsAvailable_ExistingBookings(t *testing.T) {
	ws := nineToFive(t)
	existing := []models.Booking{
		{ID: 7, StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusConfirmed)},
	}

	if IsAvailable(ws, at(10, 30), at(11, 30), existing, nil) {
		t.Fatalf("expected overlap with booking 7")
	}

	id := uint(7)
	if !IsAvailable(ws, at(10, 30), at(11, 30), existing, &id) {
		t.Fatalf("expected own booking to be ignored")
	}
}

func TestEnumerateSlots_FullDay(t *testing.T) {
	slots := EnumerateSlots(nineToFive(t), at(0, 0), 30)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) || !slots[0].End.Equal(at(9, 30)) {
		t.Fatalf("unexpected first slot %v", slots[0])
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(at(16, 30)) || !last.End.Equal(at(17, 0)) {
		t.Fatalf("unexpected last slot %v", last)
	}

	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			t.Fatalf("slots %d and %d overlap", i-1, i)
		}
		if !slots[i].Start.After(slots[i-1].Start) {
			t.Fatalf("slots not strictly increasing at %d", i)
		}
	}
}

func TestEnumerateSlots_SkipsBreak(t *testing.T) {
	slots := EnumerateSlots(nineToFive(t, lunch(t)), at(0, 0), 30)

	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}

	has := func(h, m int) bool {
		for _, s := range slots {
			if s.Start.Equal(at(h, m)) {
				return true
			}
		}
		return false
	}

	if !has(11, 30) {
		t.Fatalf("expected 11:30 slot to be kept")
	}
	if has(12, 0) || has(12, 30) {
		t.Fatalf("expected 12:00 and 12:30 slots to be omitted")
	}
	if !has(13, 0) {
		t.Fatalf("expected 13:00 slot to be kept")
	}
}

func TestEnumerateSlots_EdgeCases(t *testing.T) {
	ws := nineToFive(t)

	if got := EnumerateSlots(ws, at(0, 0), 0); len(got) != 0 {
		t.Fatalf("expected no slots for zero duration, got %d", len(got))
	}

	// 2025-03-09 é domingo (desativado no padrão)
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := EnumerateSlots(ws, sunday, 30); len(got) != 0 {
		t.Fatalf("expected no slots on disabled day, got %d", len(got))
	}

	// 45 min não fecha o dia: último slot termina 16:30
	slots := EnumerateSlots(ws, at(0, 0), 45)
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots of 45 minutes, got %d", len(slots))
	}
	if !slots[9].End.Equal(at(16, 30)) {
		t.Fatalf("expected last slot to end 16:30, got %s", slots[9].End.Format("15:04"))
	}
}

func TestEnumerateSlots_AreAvailableWithoutBookings(t *testing.T) {
	ws := nineToFive(t, lunch(t))

	for _, s := range EnumerateSlots(ws, at(0, 0), 20) {
		if !IsAvailable(ws, s.Start, s.End, nil, nil) {
			t.Fatalf("slot %s-%s enumerated but not available", s.Start.Format("15:04"), s.End.Format("15:04"))
		}
	}
}

func TestFreeSlots(t *testing.T) {
	slots := EnumerateSlots(nineToFive(t), at(0, 0), 60)
	existing := []models.Booking{
		{ID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusConfirmed)},
		{ID: 2, StartTime: at(14, 0), EndTime: at(15, 0), Status: string(StatusCancelled), Cancelled: true},
	}

	free := FreeSlots(slots, existing)
	if len(free) != 7 {
		t.Fatalf("expected 7 free slots, got %d", len(free))
	}
	for _, s := range free {
		if s.Start.Equal(at(10, 0)) {
			t.Fatalf("expected 10:00 to be taken")
		}
	}
}
