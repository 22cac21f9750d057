package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	"github.com/BruksfildServices01/event-scheduler/internal/config"
	"github.com/BruksfildServices01/event-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/event-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/middleware"
	ucAssignee "github.com/BruksfildServices01/event-scheduler/internal/usecase/assignee"
	ucAuditLog "github.com/BruksfildServices01/event-scheduler/internal/usecase/auditlog"
	ucBooking "github.com/BruksfildServices01/event-scheduler/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/event-scheduler/internal/usecase/schedule"
)

// Deps são os singletons criados no main e compartilhados pelas rotas.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Locker lock.Locker
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Locker, d.Audit, d.Log)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, d.Locker, d.Audit, d.Log)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, d.Audit)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, d.Audit)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, d.Audit)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// 🧠 USE CASES: SCHEDULE
	// ======================================================
	getScheduleUC := ucSchedule.NewGetEventSchedule(bookingRepo)
	setScheduleUC := ucSchedule.NewSetEventSchedule(bookingRepo, d.Audit, d.Log)

	// ======================================================
	// 🧠 USE CASES: RESPONSÁVEIS E AUDITORIA
	// ======================================================
	listAssigneesUC := ucAssignee.NewListAssignees(bookingRepo)
	addAssigneesUC := ucAssignee.NewAddAssignees(bookingRepo, d.Audit)
	removeAssigneesUC := ucAssignee.NewRemoveAssignees(bookingRepo, d.Audit)
	assignedEventsUC := ucAssignee.NewListAssignedEvents(bookingRepo)
	listAuditLogsUC := ucAuditLog.NewListAuditLogs(auditLogRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
		getBookingUC,
		listBookingsUC,
		availabilityUC,
		d.Log,
	)

	scheduleHandler := handlers.NewScheduleHandler(getScheduleUC, setScheduleUC, d.Log)
	eventHandler := handlers.NewEventHandler(d.DB)
	bookingOptionHandler := handlers.NewBookingOptionHandler(d.DB)
	contactHandler := handlers.NewContactHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditLogsUC, d.Log)
	assigneeHandler := handlers.NewAssigneeHandler(
		listAssigneesUC,
		addAssigneesUC,
		removeAssigneesUC,
		assignedEventsUC,
		d.Log,
	)
	publicHandler := handlers.NewPublicHandler(d.DB, createBookingUC, availabilityUC, d.Log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/events/:id/options", publicHandler.ListBookingOptions)
			publicAPI.GET("/events/:id/availability", publicHandler.Availability)
			publicAPI.POST("/events/:id/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/events/:id", eventHandler.Get)
			secured.PATCH("/events/:id", eventHandler.Update)

			secured.GET("/events/:id/options", bookingOptionHandler.List)
			secured.POST("/events/:id/options", bookingOptionHandler.Create)
			secured.PATCH("/events/:id/options/:optionId", bookingOptionHandler.Update)

			secured.GET("/events/:id/schedule", scheduleHandler.Get)
			secured.PUT("/events/:id/schedule", scheduleHandler.Update)

			secured.GET("/events/:id/availability", bookingHandler.Availability)

			secured.GET("/events/:id/assignees", assigneeHandler.List)
			secured.POST("/events/:id/assignees", assigneeHandler.Add)
			secured.DELETE("/events/:id/assignees", assigneeHandler.Remove)
			secured.GET("/assigned-events", assigneeHandler.MyEvents)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/events/:id/bookings", bookingHandler.ListByEvent)
			secured.POST("/events/:id/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.Update)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/contacts", contactHandler.List)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
