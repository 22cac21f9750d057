package schedule

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

type ScheduleOutput struct {
	Schedule domain.WeeklySchedule `json:"schedule"`
	// Configured=false: o evento ainda não tem agenda e nada pode ser agendado.
	Configured bool `json:"configured"`
}

type GetEventSchedule struct {
	repo Repository
}

func NewGetEventSchedule(repo Repository) *GetEventSchedule {
	return &GetEventSchedule{repo: repo}
}

func (uc *GetEventSchedule) Execute(
	ctx context.Context,
	organizationID uint,
	eventID uint,
) (*ScheduleOutput, error) {

	ev, err := eventscope.Load(ctx, uc.repo, eventID, organizationID)
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.GetSchedule(ctx, ev.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ScheduleOutput{Schedule: domain.Default()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	ws, err := domain.Decode(s.Data)
	if err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	return &ScheduleOutput{Schedule: ws, Configured: true}, nil
}
