package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/event-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *BookingGormRepository) GetEventByID(
	ctx context.Context,
	id uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *BookingGormRepository) LockEvent(
	ctx context.Context,
	id uint,
) error {

	var ev models.Event
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&ev).Error
}

func (r *BookingGormRepository) GetBookingOption(
	ctx context.Context,
	eventID uint,
	optionID uint,
) (*models.EventBookingOption, error) {

	var opt models.EventBookingOption
	if err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", optionID, eventID).
		First(&opt).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetSchedule(
	ctx context.Context,
	eventID uint,
) (*models.EventSchedule, error) {

	var s models.EventSchedule
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) SaveSchedule(
	ctx context.Context,
	s *models.EventSchedule,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"schedule", "updated_at"}),
		}).
		Create(s).Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	eventID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("event_id = ? AND cancelled = ?", eventID, false)

	if !to.IsZero() {
		q = q.Where("start_time < ?", to.UTC())
	}
	if !from.IsZero() {
		q = q.Where("end_time > ?", from.UTC())
	}

	var bookings []models.Booking
	if err := q.
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	eventID uint,
	from time.Time,
	to time.Time,
	includeCancelled bool,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where(
			"event_id = ? AND start_time >= ? AND start_time < ?",
			eventID,
			from.UTC(),
			to.UTC(),
		)

	if !includeCancelled {
		q = q.Where("cancelled = ?", false)
	}

	var bookings []models.Booking
	if err := q.
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Guest
// --------------------------------------------------

func (r *BookingGormRepository) CreateGuest(
	ctx context.Context,
	g *models.Guest,
) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *BookingGormRepository) ListGuests(
	ctx context.Context,
	bookingIDs []uint,
) ([]models.Guest, error) {

	guests := []models.Guest{}
	if len(bookingIDs) == 0 {
		return guests, nil
	}

	if err := r.db.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Order("id ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}

	return guests, nil
}

func (r *BookingGormRepository) DeleteGuestsByBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&models.Guest{}).Error
}

// --------------------------------------------------
// Contact
// --------------------------------------------------

func (r *BookingGormRepository) UpsertContact(
	ctx context.Context,
	c *models.Contact,
) error {

	updates := map[string]any{
		"name":             c.Name,
		"last_event_id":    c.LastEventID,
		"last_booking_id":  c.LastBookingID,
		"last_interaction": c.LastInteraction,
		"updated_at":       time.Now().UTC(),
	}
	// telefone vazio não apaga o já conhecido
	if c.Phone != "" {
		updates["phone"] = c.Phone
	}
	// agendamento público não troca o último responsável
	if c.LastAssigneeID != nil {
		updates["last_assignee_id"] = c.LastAssigneeID
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "email"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(c).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
