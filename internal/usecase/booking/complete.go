package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	organizationID uint,
	userID *uint,
	bookingID uint,
) (*models.Booking, error) {

	b, ev, err := loadBookingInScope(ctx, uc.repo, bookingID, organizationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(b, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         userID,
		Action:         "booking_completed",
		Entity:         "booking",
		EntityID:       &b.ID,
	})

	return b, nil
}
