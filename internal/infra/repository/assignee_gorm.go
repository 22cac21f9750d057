package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

// --------------------------------------------------
// Assignees
// --------------------------------------------------

func (r *BookingGormRepository) ListAssignees(
	ctx context.Context,
	eventID uint,
) ([]models.EventAssignee, error) {

	var out []models.EventAssignee
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *BookingGormRepository) AddAssignees(
	ctx context.Context,
	eventID uint,
	userIDs []uint,
	assignedBy *uint,
) ([]models.EventAssignee, error) {

	if len(userIDs) == 0 {
		return nil, nil
	}

	var existing []uint
	if err := r.db.WithContext(ctx).
		Model(&models.EventAssignee{}).
		Where("event_id = ? AND user_id IN ?", eventID, userIDs).
		Pluck("user_id", &existing).Error; err != nil {
		return nil, err
	}

	skip := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		skip[id] = struct{}{}
	}

	added := make([]models.EventAssignee, 0, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := skip[userID]; ok {
			continue
		}
		skip[userID] = struct{}{}
		added = append(added, models.EventAssignee{
			EventID:    eventID,
			UserID:     userID,
			AssignedBy: assignedBy,
		})
	}

	if len(added) == 0 {
		return added, nil
	}

	// corrida com outra atribuição igual: a constraint única decide
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&added).Error; err != nil {
		return nil, err
	}

	return added, nil
}

func (r *BookingGormRepository) RemoveAssignees(
	ctx context.Context,
	eventID uint,
	userIDs []uint,
) (int64, error) {

	if len(userIDs) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id IN ?", eventID, userIDs).
		Delete(&models.EventAssignee{})
	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) IsAssigned(
	ctx context.Context,
	eventID uint,
	userID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EventAssignee{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingGormRepository) ListEventsByAssignee(
	ctx context.Context,
	organizationID uint,
	userID uint,
) ([]models.Event, error) {

	var out []models.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN event_assignees ea ON ea.event_id = events.id").
		Where("ea.user_id = ? AND events.organization_id = ? AND events.deleted = ?", userID, organizationID, false).
		Order("events.id ASC").
		Find(&out).Error
	return out, err
}
