package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	"github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

type Repository interface {
	booking.EventRepository
	booking.ScheduleRepository
}

type SetEventScheduleInput struct {
	OrganizationID uint
	UserID         *uint
	EventID        uint
	Raw            map[string]any
}

type SetEventSchedule struct {
	repo  Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewSetEventSchedule(
	repo Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SetEventSchedule {
	return &SetEventSchedule{
		repo:  repo,
		audit: audit,
		log:   log.With(zap.String("usecase", "set_event_schedule")),
	}
}

// Execute normaliza a agenda recebida e a grava. A entrada nunca é
// rejeitada por conteúdo: o que não for válido cai no padrão.
func (uc *SetEventSchedule) Execute(
	ctx context.Context,
	in SetEventScheduleInput,
) (domain.WeeklySchedule, error) {

	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return domain.WeeklySchedule{}, err
	}

	ws := domain.Normalize(in.Raw)

	data, err := domain.Encode(ws)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("encode schedule: %w", err)
	}

	if err := uc.repo.SaveSchedule(ctx, &models.EventSchedule{
		EventID: ev.ID,
		Data:    datatypes.JSON(data),
	}); err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("save schedule: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: ev.OrganizationID,
		EventID:        &ev.ID,
		UserID:         in.UserID,
		Action:         "schedule_updated",
		Entity:         "event_schedule",
		EntityID:       &ev.ID,
	})

	uc.log.Info("schedule updated", zap.Uint("event_id", ev.ID))

	return ws, nil
}
