package booking

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/testfixtures"
)

func TestListBookings_RangeAndCancelledFilter(t *testing.T) {
	e := newEnv(t)

	created, err := e.create().Execute(context.Background(), CreateBookingInput{
		EventID: e.event.ID, StartTime: slot("09:00"), EndTime: slot("09:30"),
		Guests: []GuestInput{{Name: "Ana", Email: "ana@example.com"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	testfixtures.CreateBooking(t, e.db, e.event.ID,
		testfixtures.At(2025, 3, 10, 14, 0), testfixtures.At(2025, 3, 10, 15, 0), true)
	testfixtures.CreateBooking(t, e.db, e.event.ID,
		testfixtures.At(2025, 3, 12, 10, 0), testfixtures.At(2025, 3, 12, 11, 0), false)

	uc := NewListBookings(e.repo)

	day, err := uc.Execute(context.Background(), ListBookingsInput{EventID: e.event.ID, From: monday})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day) != 1 || day[0].ID != created.Booking.ID {
		t.Fatalf("expected only the active monday booking, got %+v", day)
	}
	if len(day[0].Guests) != 1 || day[0].Guests[0].Email != "ana@example.com" {
		t.Fatalf("expected guest Ana, got %+v", day[0].Guests)
	}

	week, err := uc.Execute(context.Background(), ListBookingsInput{
		EventID: e.event.ID, From: monday, To: "2025-03-14", IncludeCancelled: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week) != 3 {
		t.Fatalf("expected 3 bookings in the week, got %d", len(week))
	}

	_, err = uc.Execute(context.Background(), ListBookingsInput{EventID: e.event.ID, From: "2025-03-14", To: monday})
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
}

func TestGetBooking_WithGuests(t *testing.T) {
	e := newEnv(t)

	created, err := e.create().Execute(context.Background(), CreateBookingInput{
		EventID: e.event.ID, StartTime: slot("09:00"), EndTime: slot("09:30"),
		Guests: []GuestInput{{Name: "Ana", Email: "ana@example.com"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := NewGetBooking(e.repo).Execute(context.Background(), 1, created.Booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Guests) != 1 {
		t.Fatalf("expected 1 guest, got %d", len(out.Guests))
	}

	_, err = NewGetBooking(e.repo).Execute(context.Background(), 2, created.Booking.ID)
	expectKind(t, err, httperr.KindNotFound)
}
