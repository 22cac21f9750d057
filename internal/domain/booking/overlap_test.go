package booking

import (
	"testing"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusConfirmed)},
	}

	cases := []struct {
		name string
		slot TimeSlot
		want bool
	}{
		{"inside", TimeSlot{at(10, 30), at(10, 45)}, true},
		{"adjacent after", TimeSlot{at(11, 0), at(11, 30)}, false},
		{"adjacent before", TimeSlot{at(9, 0), at(10, 0)}, false},
		{"contains", TimeSlot{at(9, 0), at(12, 0)}, true},
		{"starts inside", TimeSlot{at(10, 59), at(11, 30)}, true},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.slot, existing, nil); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestOverlaps_IgnoresCancelled(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusCancelled), Cancelled: true},
	}

	if Overlaps(TimeSlot{at(10, 0), at(11, 0)}, existing, nil) {
		t.Fatalf("expected cancelled booking to be ignored")
	}
}

func TestOverlaps_Exclude(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusConfirmed)},
		{ID: 2, StartTime: at(11, 0), EndTime: at(12, 0), Status: string(StatusConfirmed)},
	}

	id := uint(1)
	if Overlaps(TimeSlot{at(10, 15), at(10, 45)}, existing, &id) {
		t.Fatalf("expected booking 1 to be excluded")
	}
	if !Overlaps(TimeSlot{at(10, 30), at(11, 30)}, existing, &id) {
		t.Fatalf("expected overlap with booking 2")
	}
}
