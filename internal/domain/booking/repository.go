package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type EventRepository interface {
	GetEventByID(
		ctx context.Context,
		id uint,
	) (*models.Event, error)

	// LockEvent serializa escritas concorrentes no mesmo evento
	// (SELECT ... FOR UPDATE dentro da transação).
	LockEvent(
		ctx context.Context,
		id uint,
	) error

	GetBookingOption(
		ctx context.Context,
		eventID uint,
		optionID uint,
	) (*models.EventBookingOption, error)
}

type ScheduleRepository interface {
	GetSchedule(
		ctx context.Context,
		eventID uint,
	) (*models.EventSchedule, error)

	SaveSchedule(
		ctx context.Context,
		s *models.EventSchedule,
	) error
}

type BookingRepository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// ListActiveBookings devolve os agendamentos não cancelados do evento
	// que intersectam [from, to). Zero em from/to deixa o lado aberto.
	ListActiveBookings(
		ctx context.Context,
		eventID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		eventID uint,
		from time.Time,
		to time.Time,
		includeCancelled bool,
	) ([]models.Booking, error)
}

type GuestRepository interface {
	CreateGuest(
		ctx context.Context,
		g *models.Guest,
	) error

	ListGuests(
		ctx context.Context,
		bookingIDs []uint,
	) ([]models.Guest, error)

	DeleteGuestsByBooking(
		ctx context.Context,
		bookingID uint,
	) error
}

type ContactRepository interface {
	// UpsertContact cria ou atualiza o contato por (organização, email).
	UpsertContact(
		ctx context.Context,
		c *models.Contact,
	) error
}

type AssigneeRepository interface {
	ListAssignees(
		ctx context.Context,
		eventID uint,
	) ([]models.EventAssignee, error)

	// AddAssignees ignora usuários já atribuídos e devolve só os novos.
	AddAssignees(
		ctx context.Context,
		eventID uint,
		userIDs []uint,
		assignedBy *uint,
	) ([]models.EventAssignee, error)

	// RemoveAssignees devolve quantas atribuições existiam e foram removidas.
	RemoveAssignees(
		ctx context.Context,
		eventID uint,
		userIDs []uint,
	) (int64, error)

	IsAssigned(
		ctx context.Context,
		eventID uint,
		userID uint,
	) (bool, error)

	// ListEventsByAssignee devolve os eventos ativos da organização
	// atribuídos ao usuário.
	ListEventsByAssignee(
		ctx context.Context,
		organizationID uint,
		userID uint,
	) ([]models.Event, error)
}

type Repository interface {
	EventRepository
	ScheduleRepository
	BookingRepository
	GuestRepository
	ContactRepository
	AssigneeRepository

	// Transaction executa fn com um Repository ligado à mesma transação.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
