package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/auditlog"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.AuditLog, int64, error) {

	// sempre restrito à organização
	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("organization_id = ?", f.OrganizationID)

	if f.EventID != nil {
		q = q.Where("event_id = ?", *f.EventID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

var _ domain.Repository = (*AuditLogGormRepository)(nil)
