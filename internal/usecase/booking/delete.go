package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove os convidados e depois o agendamento. Irreversível.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	organizationID uint,
	userID *uint,
	bookingID uint,
) error {

	b, ev, err := loadBookingInScope(ctx, uc.repo, bookingID, organizationID)
	if err != nil {
		return err
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.DeleteGuestsByBooking(ctx, b.ID); err != nil {
			return fmt.Errorf("delete guests: %w", err)
		}
		if err := tx.DeleteBooking(ctx, b.ID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         userID,
		Action:         "booking_deleted",
		Entity:         "booking",
		EntityID:       &b.ID,
		Metadata: map[string]any{
			"start": b.StartTime,
			"end":   b.EndTime,
		},
	})

	return nil
}
