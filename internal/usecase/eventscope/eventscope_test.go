package eventscope

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/event-scheduler/internal/testfixtures"
)

func TestLoad(t *testing.T) {
	db := testfixtures.OpenDB(t)
	repo := repository.NewBookingGormRepository(db)
	ev := testfixtures.CreateEvent(t, db, 1, "UTC")
	ctx := context.Background()

	got, err := Load(ctx, repo, ev.ID, 1)
	if err != nil || got.ID != ev.ID {
		t.Fatalf("expected event %d, got %v (%v)", ev.ID, got, err)
	}

	// rota pública: sem organização
	if _, err := Load(ctx, repo, ev.ID, 0); err != nil {
		t.Fatalf("expected public lookup to succeed, got %v", err)
	}

	if _, err := Load(ctx, repo, ev.ID, 2); !httperr.IsBusiness(err, "event_not_found") {
		t.Fatalf("expected event_not_found for other organization, got %v", err)
	}

	if _, err := Load(ctx, repo, ev.ID+100, 1); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("expected not found for missing event, got %v", err)
	}
}
