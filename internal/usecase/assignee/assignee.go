package assignee

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	"github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/usecase/eventscope"
)

type Repository interface {
	booking.EventRepository
	booking.AssigneeRepository
}

type ChangeInput struct {
	OrganizationID uint
	UserID         *uint
	EventID        uint
	UserIDs        []uint
}

// ======================================================
// LIST
// ======================================================

type ListAssignees struct {
	repo Repository
}

func NewListAssignees(repo Repository) *ListAssignees {
	return &ListAssignees{repo: repo}
}

func (uc *ListAssignees) Execute(
	ctx context.Context,
	organizationID uint,
	eventID uint,
) ([]models.EventAssignee, error) {

	ev, err := eventscope.Load(ctx, uc.repo, eventID, organizationID)
	if err != nil {
		return nil, err
	}

	out, err := uc.repo.ListAssignees(ctx, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("list assignees: %w", err)
	}
	return out, nil
}

// ======================================================
// ADD
// ======================================================

type AddAssignees struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewAddAssignees(repo Repository, audit *audit.Dispatcher) *AddAssignees {
	return &AddAssignees{repo: repo, audit: audit}
}

// Execute atribui os usuários ao evento. Quem já estava atribuído é ignorado
// e fica fora do retorno.
func (uc *AddAssignees) Execute(
	ctx context.Context,
	in ChangeInput,
) ([]models.EventAssignee, error) {

	if err := validateUserIDs(in.UserIDs); err != nil {
		return nil, err
	}

	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	added, err := uc.repo.AddAssignees(ctx, ev.ID, in.UserIDs, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("add assignees: %w", err)
	}

	if len(added) > 0 {
		ids := make([]uint, 0, len(added))
		for _, a := range added {
			ids = append(ids, a.UserID)
		}
		uc.audit.Dispatch(audit.Event{
			OrganizationID: ev.OrganizationID,
			EventID:        &ev.ID,
			UserID:         in.UserID,
			Action:         "assignees_added",
			Entity:         "event_assignee",
			Metadata:       map[string]any{"user_ids": ids},
		})
	}

	return added, nil
}

// ======================================================
// REMOVE
// ======================================================

type RemoveAssignees struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewRemoveAssignees(repo Repository, audit *audit.Dispatcher) *RemoveAssignees {
	return &RemoveAssignees{repo: repo, audit: audit}
}

// Execute remove as atribuições encontradas; IDs desconhecidos não são erro.
func (uc *RemoveAssignees) Execute(
	ctx context.Context,
	in ChangeInput,
) (int64, error) {

	if err := validateUserIDs(in.UserIDs); err != nil {
		return 0, err
	}

	ev, err := eventscope.Load(ctx, uc.repo, in.EventID, in.OrganizationID)
	if err != nil {
		return 0, err
	}

	removed, err := uc.repo.RemoveAssignees(ctx, ev.ID, in.UserIDs)
	if err != nil {
		return 0, fmt.Errorf("remove assignees: %w", err)
	}

	if removed > 0 {
		uc.audit.Dispatch(audit.Event{
			OrganizationID: ev.OrganizationID,
			EventID:        &ev.ID,
			UserID:         in.UserID,
			Action:         "assignees_removed",
			Entity:         "event_assignee",
			Metadata:       map[string]any{"user_ids": in.UserIDs, "removed": removed},
		})
	}

	return removed, nil
}

// ======================================================
// EVENTOS DO USUÁRIO
// ======================================================

type ListAssignedEvents struct {
	repo Repository
}

func NewListAssignedEvents(repo Repository) *ListAssignedEvents {
	return &ListAssignedEvents{repo: repo}
}

func (uc *ListAssignedEvents) Execute(
	ctx context.Context,
	organizationID uint,
	userID uint,
) ([]models.Event, error) {

	out, err := uc.repo.ListEventsByAssignee(ctx, organizationID, userID)
	if err != nil {
		return nil, fmt.Errorf("list assigned events: %w", err)
	}
	return out, nil
}

func validateUserIDs(ids []uint) error {
	if len(ids) == 0 {
		return httperr.ErrInvalid("user_ids_required", nil)
	}
	for _, id := range ids {
		if id == 0 {
			return httperr.ErrInvalid("invalid_user_id", nil)
		}
	}
	return nil
}
