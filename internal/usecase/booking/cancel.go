package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela o agendamento. Cancelar de novo não escreve nada e não falha.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	organizationID uint,
	userID *uint,
	bookingID uint,
) (*models.Booking, error) {

	b, ev, err := loadBookingInScope(ctx, uc.repo, bookingID, organizationID)
	if err != nil {
		return nil, err
	}

	if b.Cancelled {
		return b, nil
	}

	if err := domain.Cancel(b, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         userID,
		Action:         "booking_cancelled",
		Entity:         "booking",
		EntityID:       &b.ID,
	})

	return b, nil
}
