package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateBookingInput: campos nil não são alterados.
type UpdateBookingInput struct {
	OrganizationID uint
	UserID         *uint
	BookingID      uint `json:"booking_id" validate:"required"`

	StartTime       *string        `json:"start_time"`
	EndTime         *string        `json:"end_time"`
	Timezone        string         `json:"timezone"`
	Status          *string        `json:"status" validate:"omitempty,oneof=confirmed cancelled completed"`
	Cancelled       *bool          `json:"cancelled"`
	BookingOptionID *uint          `json:"booking_option_id"`
	FormData        map[string]any `json:"form_data"`
	Guests          *[]GuestInput  `json:"guests" validate:"omitempty,dive"`
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewUpdateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		log:    log.With(zap.String("usecase", "update_booking")),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*BookingOutput, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	current, ev, err := loadBookingInScope(ctx, uc.repo, in.BookingID, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	// trabalhamos numa cópia: nada é alterado se alguma validação falhar
	next := *current
	now := time.Now().UTC()

	// --------------------------------------------------
	// 1️⃣ Horário
	// --------------------------------------------------
	timeChanged := false

	if in.StartTime != nil || in.EndTime != nil {
		if in.StartTime == nil || in.EndTime == nil {
			return nil, httperr.ErrInvalid("start_and_end_required", nil)
		}

		loc, err := requestLocation(in.Timezone, ev)
		if err != nil {
			return nil, err
		}

		start, end, err := parseRange(*in.StartTime, *in.EndTime, loc)
		if err != nil {
			return nil, err
		}

		if !start.Equal(current.StartTime) || !end.Equal(current.EndTime) {
			timeChanged = true
			next.StartTime = start
			next.EndTime = end
		}
	}

	// --------------------------------------------------
	// 2️⃣ Status / cancelamento
	// --------------------------------------------------
	if err := domain.ApplyStatus(&next, in.Status, in.Cancelled, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Opção / dados do formulário
	// --------------------------------------------------
	if in.BookingOptionID != nil {
		if _, err := loadBookingOption(ctx, uc.repo, ev.ID, *in.BookingOptionID); err != nil {
			return nil, err
		}
		next.BookingOptionID = in.BookingOptionID
	}

	if in.FormData != nil {
		formData, err := encodeFormData(in.FormData)
		if err != nil {
			return nil, err
		}
		next.FormData = formData
	}

	// --------------------------------------------------
	// 4️⃣ Disponibilidade: horário novo ou reativação
	// --------------------------------------------------
	reactivated := current.Cancelled && !next.Cancelled
	needsCheck := !next.Cancelled && (timeChanged || reactivated)

	if needsCheck {
		ws, found, err := loadSchedule(ctx, uc.repo, ev.ID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, httperr.ErrConflict("no_schedule")
		}

		release, err := acquireEventLock(ctx, uc.locker, ev.ID)
		if err != nil {
			return nil, err
		}
		defer release()

		err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
			if err := checkSlot(ctx, tx, ev, ws, next.StartTime, next.EndTime, &next.ID); err != nil {
				return err
			}
			return uc.persist(ctx, tx, ev, &next, in.Guests, in.UserID, now)
		})
		if err != nil {
			return nil, err
		}
	} else {
		err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
			return uc.persist(ctx, tx, ev, &next, in.Guests, in.UserID, now)
		})
		if err != nil {
			return nil, err
		}
	}

	guests, err := uc.repo.ListGuests(ctx, []uint{next.ID})
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         in.UserID,
		Action:         "booking_updated",
		Entity:         "booking",
		EntityID:       &next.ID,
		Metadata: map[string]any{
			"time_changed": timeChanged,
			"status":       next.Status,
		},
	})

	uc.log.Info("booking updated",
		zap.Uint("booking_id", next.ID),
		zap.Bool("time_changed", timeChanged),
		zap.String("status", next.Status),
	)

	return &BookingOutput{Booking: &next, Guests: guests}, nil
}

func (uc *UpdateBooking) persist(
	ctx context.Context,
	tx domain.Repository,
	ev *models.Event,
	b *models.Booking,
	guests *[]GuestInput,
	userID *uint,
	now time.Time,
) error {

	if err := tx.UpdateBooking(ctx, b); err != nil {
		return translateStorageConflict(err)
	}

	if guests == nil {
		return nil
	}

	// substitui o conjunto inteiro de convidados
	if err := tx.DeleteGuestsByBooking(ctx, b.ID); err != nil {
		return fmt.Errorf("delete guests: %w", err)
	}

	_, err := saveGuests(ctx, tx, ev, b, *guests, userID, now)
	return err
}
