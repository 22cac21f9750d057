package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	organizationID uint,
	bookingID uint,
) (*BookingOutput, error) {

	b, _, err := loadBookingInScope(ctx, uc.repo, bookingID, organizationID)
	if err != nil {
		return nil, err
	}

	guests, err := uc.repo.ListGuests(ctx, []uint{b.ID})
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	return &BookingOutput{Booking: b, Guests: guests}, nil
}
