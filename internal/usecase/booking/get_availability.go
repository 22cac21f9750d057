package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/timezone"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

type AvailabilityInput struct {
	OrganizationID  uint
	EventID         uint
	Date            string
	DurationMinutes int
	BookingOptionID *uint

	// IncludeBooked devolve também os slots ocupados, marcados com Booked.
	IncludeBooked bool
}

type AvailableSlot struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booked bool      `json:"booked"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]AvailableSlot, error) {

	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(ev.Timezone)

	date, err := timezone.ParseDate(in.Date, loc)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_date", nil)
	}

	duration, err := uc.resolveDuration(ctx, ev.ID, in)
	if err != nil {
		return nil, err
	}

	ws, found, err := loadSchedule(ctx, uc.repo, ev.ID)
	if err != nil {
		return nil, err
	}

	out := []AvailableSlot{}
	if !found {
		return out, nil
	}

	slots := domain.EnumerateSlots(ws, date, duration)
	if len(slots) == 0 {
		return out, nil
	}

	existing, err := uc.repo.ListActiveBookings(ctx, ev.ID, slots[0].Start, slots[len(slots)-1].End)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	for _, s := range slots {
		booked := domain.Overlaps(s, existing, nil)
		if booked && !in.IncludeBooked {
			continue
		}
		out = append(out, AvailableSlot{Start: s.Start, End: s.End, Booked: booked})
	}

	return out, nil
}

// resolveDuration: valor explícito > duração da opção > padrão.
func (uc *GetAvailability) resolveDuration(
	ctx context.Context,
	eventID uint,
	in AvailabilityInput,
) (int, error) {

	if in.DurationMinutes < 0 || in.DurationMinutes > 24*60 {
		return 0, httperr.ErrInvalid("invalid_duration", nil)
	}
	if in.DurationMinutes > 0 {
		return in.DurationMinutes, nil
	}

	if in.BookingOptionID != nil {
		opt, err := loadBookingOption(ctx, uc.repo, eventID, *in.BookingOptionID)
		if err != nil {
			return 0, err
		}
		if opt.DurationMinutes > 0 {
			return opt.DurationMinutes, nil
		}
	}

	return domain.DefaultSlotMinutes, nil
}
