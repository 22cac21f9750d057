package auditlog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// Filter: campos zerados não filtram. To é exclusivo.
type Filter struct {
	OrganizationID uint
	EventID        *uint
	UserID         *uint
	Action         string
	Entity         string
	From           time.Time
	To             time.Time
	Limit          int
	Offset         int
}

type Repository interface {
	// List devolve a página pedida (mais recentes primeiro) e o total do filtro.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.AuditLog, int64, error)
}
