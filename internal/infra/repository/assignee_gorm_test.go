package repository

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
	"github.com/BruksfildServices01/event-scheduler/internal/testfixtures"
)

func TestAddAssignees_SkipsExisting(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := NewBookingGormRepository(db)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")
	ctx := context.Background()
	admin := uint(99)

	added, err := repo.AddAssignees(ctx, ev.ID, []uint{10, 11}, &admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 new assignees, got %d", len(added))
	}

	// 10 já existe; 12 vem repetido na própria lista
	added, err = repo.AddAssignees(ctx, ev.ID, []uint{10, 12, 12}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 1 || added[0].UserID != 12 {
		t.Fatalf("expected only user 12 added, got %+v", added)
	}

	all, err := repo.ListAssignees(ctx, ev.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 assignees, got %d", len(all))
	}
	if all[0].AssignedBy == nil || *all[0].AssignedBy != admin {
		t.Fatalf("expected assigned_by %d, got %v", admin, all[0].AssignedBy)
	}
}

func TestRemoveAssignees_CountsOnlyFound(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := NewBookingGormRepository(db)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")
	ctx := context.Background()

	if _, err := repo.AddAssignees(ctx, ev.ID, []uint{10, 11}, nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := repo.RemoveAssignees(ctx, ev.ID, []uint{11, 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	ok, err := repo.IsAssigned(ctx, ev.ID, 11)
	if err != nil || ok {
		t.Fatalf("expected user 11 unassigned, got %v (%v)", ok, err)
	}
	ok, err = repo.IsAssigned(ctx, ev.ID, 10)
	if err != nil || !ok {
		t.Fatalf("expected user 10 assigned, got %v (%v)", ok, err)
	}
}

func TestListEventsByAssignee_ScopedAndActive(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	mine := testfixtures.CreateEvent(t, db, 1, "UTC")
	deleted := testfixtures.CreateEvent(t, db, 1, "UTC")
	other := testfixtures.CreateEvent(t, db, 2, "UTC")

	for _, ev := range []*models.Event{mine, deleted, other} {
		if _, err := repo.AddAssignees(ctx, ev.ID, []uint{7}, nil); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	db.Model(deleted).Update("deleted", true)

	events, err := repo.ListEventsByAssignee(ctx, 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != mine.ID {
		t.Fatalf("expected only event %d, got %+v", mine.ID, events)
	}
}

func TestUpsertContact_LastAssigneeKeptWhenNil(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	staff := uint(5)
	if err := repo.UpsertContact(ctx, &models.Contact{
		OrganizationID: 1, Name: "Bia", Email: "bia@example.com", LastAssigneeID: &staff,
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertContact(ctx, &models.Contact{
		OrganizationID: 1, Name: "Bia", Email: "bia@example.com",
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var c models.Contact
	if err := db.Where("email = ?", "bia@example.com").First(&c).Error; err != nil {
		t.Fatalf("load contact: %v", err)
	}
	if c.LastAssigneeID == nil || *c.LastAssigneeID != staff {
		t.Fatalf("expected last_assignee_id %d, got %v", staff, c.LastAssigneeID)
	}
}
