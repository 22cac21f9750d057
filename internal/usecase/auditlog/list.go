package auditlog

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/auditlog"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type ListAuditLogsInput struct {
	OrganizationID uint
	EventID        *uint
	UserID         *uint
	Action         string
	Entity         string
	From           string // YYYY-MM-DD, inclusivo
	To             string // YYYY-MM-DD, inclusivo
	Page           int
	Limit          int
}

type ListAuditLogsOutput struct {
	Logs  []models.AuditLog
	Total int64
	Page  int
	Limit int
}

type ListAuditLogs struct {
	repo domain.Repository
}

func NewListAuditLogs(repo domain.Repository) *ListAuditLogs {
	return &ListAuditLogs{repo: repo}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	in ListAuditLogsInput,
) (*ListAuditLogsOutput, error) {

	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	f := domain.Filter{
		OrganizationID: in.OrganizationID,
		EventID:        in.EventID,
		UserID:         in.UserID,
		Action:         in.Action,
		Entity:         in.Entity,
		Limit:          limit,
		Offset:         (page - 1) * limit,
	}

	if in.From != "" {
		from, err := time.Parse(time.DateOnly, in.From)
		if err != nil {
			return nil, httperr.ErrInvalid("invalid_date", map[string]string{"from": in.From})
		}
		f.From = from
	}
	if in.To != "" {
		to, err := time.Parse(time.DateOnly, in.To)
		if err != nil {
			return nil, httperr.ErrInvalid("invalid_date", map[string]string{"to": in.To})
		}
		// dia final inteiro
		f.To = to.AddDate(0, 0, 1)
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.From.Before(f.To) {
		return nil, httperr.ErrInvalid("invalid_time_range", nil)
	}

	logs, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	return &ListAuditLogsOutput{
		Logs:  logs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
