package booking

import (
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marca o agendamento como cancelado. Já cancelado é no-op.
func Cancel(b *models.Booking, now time.Time) error {
	if b.Cancelled {
		return nil
	}
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.Cancelled = true
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// ApplyStatus aplica status e/ou flag de cancelamento mantendo os dois
// coerentes: cancelled == true se e somente se status == cancelled.
func ApplyStatus(b *models.Booking, status *string, cancelled *bool, now time.Time) error {
	if status == nil && cancelled == nil {
		return nil
	}

	var target Status
	switch {
	case status != nil:
		s, ok := ParseStatus(*status)
		if !ok {
			return httperr.ErrInvalid("invalid_status", nil)
		}
		if cancelled != nil && *cancelled != (s == StatusCancelled) {
			return httperr.ErrInvalid("inconsistent_status", nil)
		}
		target = s
	case *cancelled:
		target = StatusCancelled
	case b.Cancelled:
		target = StatusConfirmed
	default:
		return nil
	}

	switch target {
	case StatusCancelled:
		return Cancel(b, now)
	case StatusCompleted:
		if b.Cancelled {
			return httperr.ErrBusiness("invalid_state")
		}
		if Status(b.Status) == StatusCompleted {
			return nil
		}
		return Complete(b, now)
	default:
		b.Status = string(StatusConfirmed)
		b.Cancelled = false
		b.CancelledAt = nil
		b.CompletedAt = nil
		return nil
	}
}
