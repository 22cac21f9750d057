package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/timezone"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
	"github.com/BruksfildServices01/event-scheduler/internal/validators"
)

// ======================================================
// INPUT COMPARTILHADO
// ======================================================

type GuestInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

// BookingOutput é o agendamento com seus convidados.
type BookingOutput struct {
	Booking *models.Booking
	Guests  []models.Guest
}

// ======================================================
// EVENTO / AGENDA
// ======================================================

func loadBooking(
	ctx context.Context,
	repo domain.BookingRepository,
	bookingID uint,
) (*models.Booking, error) {

	b, err := repo.GetBooking(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	return b, nil
}

// loadBookingInScope busca o agendamento e o evento dele, respeitando o tenant.
func loadBookingInScope(
	ctx context.Context,
	repo domain.Repository,
	bookingID uint,
	organizationID uint,
) (*models.Booking, *models.Event, error) {

	b, err := loadBooking(ctx, repo, bookingID)
	if err != nil {
		return nil, nil, err
	}

	ev, err := eventscope.Load(ctx, repo, b.EventID, organizationID)
	if httperr.IsBusiness(err, "event_not_found") {
		return nil, nil, httperr.ErrNotFound("booking_not_found")
	}
	if err != nil {
		return nil, nil, err
	}

	return b, ev, nil
}

// loadSchedule devolve a agenda normalizada; found=false se o evento não tem agenda.
func loadSchedule(
	ctx context.Context,
	repo domain.ScheduleRepository,
	eventID uint,
) (schedule.WeeklySchedule, bool, error) {

	s, err := repo.GetSchedule(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule.WeeklySchedule{}, false, nil
	}
	if err != nil {
		return schedule.WeeklySchedule{}, false, fmt.Errorf("get schedule for event %d: %w", eventID, err)
	}

	ws, err := schedule.Decode(s.Data)
	if err != nil {
		return schedule.WeeklySchedule{}, false, fmt.Errorf("decode schedule for event %d: %w", eventID, err)
	}

	return ws, true, nil
}

func loadBookingOption(
	ctx context.Context,
	repo domain.EventRepository,
	eventID uint,
	optionID uint,
) (*models.EventBookingOption, error) {

	opt, err := repo.GetBookingOption(ctx, eventID, optionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrInvalid("booking_option_invalid", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking option %d: %w", optionID, err)
	}
	if !opt.Active {
		return nil, httperr.ErrInvalid("booking_option_invalid", nil)
	}
	return opt, nil
}

// ======================================================
// TEMPO
// ======================================================

// requestLocation resolve o fuso usado para ler horários sem offset.
func requestLocation(tz string, ev *models.Event) (*time.Location, error) {
	if tz == "" {
		return timezone.Location(ev.Timezone), nil
	}
	if !timezone.IsValid(tz) {
		return nil, httperr.ErrInvalid("invalid_timezone", nil)
	}
	return timezone.Location(tz), nil
}

// parseRange devolve [start, end) em UTC.
func parseRange(startStr, endStr string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := timezone.ParseInstant(startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrInvalid("invalid_date_or_time", map[string]string{"start_time": err.Error()})
	}

	end, err := timezone.ParseInstant(endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrInvalid("invalid_date_or_time", map[string]string{"end_time": err.Error()})
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, httperr.ErrInvalid("invalid_time_range", nil)
	}

	return start.UTC(), end.UTC(), nil
}

// ======================================================
// VALIDAÇÃO / PERSISTÊNCIA
// ======================================================

func validateInput(in any) error {
	if errs := validators.ValidateStruct(in); errs != nil {
		return httperr.ErrInvalid("validation_failed", errs)
	}
	return nil
}

func encodeFormData(data map[string]any) (datatypes.JSON, error) {
	if data == nil {
		return datatypes.JSON("{}"), nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_form_data", nil)
	}
	return datatypes.JSON(b), nil
}

// acquireEventLock traduz espera esgotada em conflito para o cliente tentar de novo.
func acquireEventLock(ctx context.Context, locker lock.Locker, eventID uint) (func(), error) {
	release, err := locker.Acquire(ctx, lock.EventKey(eventID))
	if errors.Is(err, lock.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return nil, httperr.ErrConflict("booking_in_progress")
	}
	if err != nil {
		return nil, fmt.Errorf("acquire event lock: %w", err)
	}
	return release, nil
}

// checkSlot roda o motor de disponibilidade dentro da transação, com a
// linha do evento travada.
func checkSlot(
	ctx context.Context,
	tx domain.Repository,
	ev *models.Event,
	ws schedule.WeeklySchedule,
	start time.Time,
	end time.Time,
	excludeID *uint,
) error {

	if err := tx.LockEvent(ctx, ev.ID); err != nil {
		return fmt.Errorf("lock event %d: %w", ev.ID, err)
	}

	existing, err := tx.ListActiveBookings(ctx, ev.ID, start, end)
	if err != nil {
		return fmt.Errorf("list active bookings: %w", err)
	}

	loc := timezone.Location(ev.Timezone)
	if !domain.IsAvailable(ws, start.In(loc), end.In(loc), existing, excludeID) {
		return httperr.ErrConflict("slot_unavailable")
	}

	return nil
}

// saveGuests grava os convidados e atualiza o contato de cada um.
// userID só vira last_assignee_id quando o usuário atende o evento.
func saveGuests(
	ctx context.Context,
	tx domain.Repository,
	ev *models.Event,
	b *models.Booking,
	guests []GuestInput,
	userID *uint,
	now time.Time,
) ([]models.Guest, error) {

	var assigneeID *uint
	if userID != nil && len(guests) > 0 {
		assigned, err := tx.IsAssigned(ctx, ev.ID, *userID)
		if err != nil {
			return nil, fmt.Errorf("check assignee: %w", err)
		}
		if assigned {
			assigneeID = userID
		}
	}

	saved := make([]models.Guest, 0, len(guests))

	for _, in := range guests {
		g := models.Guest{
			BookingID: b.ID,
			Name:      in.Name,
			Email:     validators.NormalizeEmail(in.Email),
			Phone:     in.Phone,
		}
		if err := tx.CreateGuest(ctx, &g); err != nil {
			return nil, fmt.Errorf("create guest: %w", err)
		}

		eventID, bookingID := ev.ID, b.ID
		interaction := now
		if err := tx.UpsertContact(ctx, &models.Contact{
			OrganizationID:  ev.OrganizationID,
			Name:            g.Name,
			Email:           g.Email,
			Phone:           g.Phone,
			LastEventID:     &eventID,
			LastBookingID:   &bookingID,
			LastAssigneeID:  assigneeID,
			LastInteraction: &interaction,
		}); err != nil {
			return nil, fmt.Errorf("upsert contact: %w", err)
		}

		saved = append(saved, g)
	}

	return saved, nil
}

// translateStorageConflict cobre a corrida que passou pela trava mas
// esbarrou na constraint de sobreposição do banco.
func translateStorageConflict(err error) error {
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("slot_unavailable")
	}
	return err
}
