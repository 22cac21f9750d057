package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/dto"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/timezone"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

type ListBookingsInput struct {
	OrganizationID   uint
	EventID          uint
	From             string // YYYY-MM-DD, inclusivo
	To               string // YYYY-MM-DD, inclusivo
	IncludeCancelled bool
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]dto.BookingDTO, error) {

	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(ev.Timezone)

	from, err := timezone.ParseDate(in.From, loc)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_date", map[string]string{"from": in.From})
	}

	to := from
	if in.To != "" {
		if to, err = timezone.ParseDate(in.To, loc); err != nil {
			return nil, httperr.ErrInvalid("invalid_date", map[string]string{"to": in.To})
		}
	}
	if to.Before(from) {
		return nil, httperr.ErrInvalid("invalid_time_range", nil)
	}

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		ev.ID,
		from,
		to.AddDate(0, 0, 1),
		in.IncludeCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	guests, err := uc.repo.ListGuests(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	byBooking := make(map[uint][]models.Guest, len(bookings))
	for _, g := range guests {
		byBooking[g.BookingID] = append(byBooking[g.BookingID], g)
	}

	result := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.NewBookingDTO(b, byBooking[b.ID], loc))
	}

	return result, nil
}
