// Package eventscope resolve o evento alvo de uma operação respeitando o
// tenant do chamador. Compartilhado pelos use cases de agendamento, agenda
// e responsáveis.
package eventscope

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// Load busca o evento; organizationID != 0 restringe ao tenant. Evento de
// outra organização é tratado como inexistente.
func Load(
	ctx context.Context,
	repo booking.EventRepository,
	eventID uint,
	organizationID uint,
) (*models.Event, error) {

	ev, err := repo.GetEventByID(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("event_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", eventID, err)
	}

	if organizationID != 0 && ev.OrganizationID != organizationID {
		return nil, httperr.ErrNotFound("event_not_found")
	}

	return ev, nil
}
