package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// 0 = rota pública, sem restrição de organização
	OrganizationID uint
	UserID         *uint

	EventID         uint           `json:"event_id" validate:"required"`
	StartTime       string         `json:"start_time" validate:"required"`
	EndTime         string         `json:"end_time" validate:"required"`
	Timezone        string         `json:"timezone"`
	BookingOptionID *uint          `json:"booking_option_id"`
	FormData        map[string]any `json:"form_data"`
	Guests          []GuestInput   `json:"guests" validate:"dive"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		log:    log.With(zap.String("usecase", "create_booking")),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*BookingOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Entrada
	// --------------------------------------------------
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Evento
	// --------------------------------------------------
	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Horário (normalizado em UTC)
	// --------------------------------------------------
	loc, err := requestLocation(in.Timezone, ev)
	if err != nil {
		return nil, err
	}

	start, end, err := parseRange(in.StartTime, in.EndTime, loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Opção de agendamento
	// --------------------------------------------------
	if in.BookingOptionID != nil {
		if _, err := loadBookingOption(ctx, uc.repo, ev.ID, *in.BookingOptionID); err != nil {
			return nil, err
		}
	}

	formData, err := encodeFormData(in.FormData)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Agenda
	// --------------------------------------------------
	ws, found, err := loadSchedule(ctx, uc.repo, ev.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrConflict("no_schedule")
	}

	// --------------------------------------------------
	// 6️⃣ Trava + transação: checagem e escrita atômicas
	// --------------------------------------------------
	release, err := acquireEventLock(ctx, uc.locker, ev.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now().UTC()
	out := &BookingOutput{}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := checkSlot(ctx, tx, ev, ws, start, end, nil); err != nil {
			return err
		}

		b := &models.Booking{
			OrganizationID:  ev.OrganizationID,
			EventID:         ev.ID,
			BookingOptionID: in.BookingOptionID,
			StartTime:       start,
			EndTime:         end,
			Status:          string(domain.InitialStatus()),
			FormData:        formData,
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return translateStorageConflict(err)
		}

		guests, err := saveGuests(ctx, tx, ev, b, in.Guests, in.UserID, now)
		if err != nil {
			return err
		}

		out.Booking = b
		out.Guests = guests
		return nil
	})

	if err != nil {
		if httperr.KindOf(err) == httperr.KindSchedulingConflict {
			uc.audit.Dispatch(audit.Event{
				OrganizationID: ev.OrganizationID,
				EventID:        &ev.ID,
				UserID:         in.UserID,
				Action:         "booking_conflict",
				Entity:         "booking",
				Metadata: map[string]any{
					"start": start,
					"end":   end,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         in.UserID,
		Action:         "booking_created",
		Entity:         "booking",
		EntityID:       &out.Booking.ID,
	})

	uc.log.Info("booking created",
		zap.Uint("booking_id", out.Booking.ID),
		zap.Uint("event_id", ev.ID),
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("guests", len(out.Guests)),
	)

	return out, nil
}
