package assignee

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/event-scheduler/internal/testfixtures"
)

func TestAssignees_AddListRemove(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := repository.NewBookingGormRepository(db)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")
	ctx := context.Background()
	admin := uint(1)

	add := NewAddAssignees(repo, nil)
	added, err := add.Execute(ctx, ChangeInput{OrganizationID: 1, UserID: &admin, EventID: ev.ID, UserIDs: []uint{3, 4}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 added, got %d", len(added))
	}

	again, err := add.Execute(ctx, ChangeInput{OrganizationID: 1, EventID: ev.ID, UserIDs: []uint{3}})
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected existing assignee to be skipped, got %+v", again)
	}

	list, err := NewListAssignees(repo).Execute(ctx, 1, ev.ID)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 assignees, got %d (%v)", len(list), err)
	}

	events, err := NewListAssignedEvents(repo).Execute(ctx, 1, 3)
	if err != nil || len(events) != 1 || events[0].ID != ev.ID {
		t.Fatalf("expected event %d for user 3, got %+v (%v)", ev.ID, events, err)
	}

	removed, err := NewRemoveAssignees(repo, nil).Execute(ctx, ChangeInput{OrganizationID: 1, EventID: ev.ID, UserIDs: []uint{4, 5}})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
}

func TestAssignees_Errors(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := repository.NewBookingGormRepository(db)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")
	ctx := context.Background()

	add := NewAddAssignees(repo, nil)

	if _, err := add.Execute(ctx, ChangeInput{OrganizationID: 1, EventID: ev.ID}); !httperr.IsBusiness(err, "user_ids_required") {
		t.Fatalf("expected user_ids_required, got %v", err)
	}
	if _, err := add.Execute(ctx, ChangeInput{OrganizationID: 1, EventID: ev.ID, UserIDs: []uint{0}}); !httperr.IsBusiness(err, "invalid_user_id") {
		t.Fatalf("expected invalid_user_id, got %v", err)
	}
	if _, err := add.Execute(ctx, ChangeInput{OrganizationID: 2, EventID: ev.ID, UserIDs: []uint{3}}); !httperr.IsBusiness(err, "event_not_found") {
		t.Fatalf("expected event_not_found for other organization, got %v", err)
	}
	if _, err := NewListAssignees(repo).Execute(ctx, 2, ev.ID); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
