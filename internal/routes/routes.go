package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barbershop-pro/booking-api/internal/audit"
	"github.com/barbershop-pro/booking-api/internal/config"
	"github.com/barbershop-pro/booking-api/internal/handlers"
	"github.com/barbershop-pro/booking-api/internal/infra/draftstore"
	infraRepo "github.com/barbershop-pro/booking-api/internal/infra/repository"
	"github.com/barbershop-pro/booking-api/internal/metrics"
	"github.com/barbershop-pro/booking-api/internal/middleware"
	"github.com/barbershop-pro/booking-api/internal/timezone"
	ucAppointment "github.com/barbershop-pro/booking-api/internal/usecase/appointment"
	ucBooking "github.com/barbershop-pro/booking-api/internal/usecase/booking"
	ucSchedule "github.com/barbershop-pro/booking-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	httpMetrics *metrics.HTTPMetrics,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	drafts := draftstore.NewRedisDraftStore(
		redisClient,
		time.Duration(cfg.DraftTTLMinutes)*time.Minute,
	)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	addSlotUC := ucSchedule.NewAddSlot(slotRepo, auditDispatcher)
	addSlotsBulkUC := ucSchedule.NewAddSlotsBulk(slotRepo, auditDispatcher)
	removeSlotUC := ucSchedule.NewRemoveSlot(slotRepo, auditDispatcher)
	listDayUC := ucSchedule.NewListDay(slotRepo)
	listWeekUC := ucSchedule.NewListWeek(slotRepo, func() time.Time {
		return timezone.NowIn(cfg.Timezone)
	})

	// ======================================================
	// USE CASES — APPOINTMENTS (ADMIN)
	// ======================================================
	filterUC := ucAppointment.NewFilter(appointmentRepo)
	setStatusUC := ucAppointment.NewSetStatus(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, auditDispatcher)

	// ======================================================
	// USE CASES — BOOKING WIZARD
	// ======================================================
	wizard := ucBooking.NewWizard(
		drafts,
		bookingRepo,
		slotRepo,
		cfg.BookingDefaultStatus,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	publicHandler := handlers.NewPublicHandler(db, listDayUC)
	bookingHandler := handlers.NewBookingHandler(wizard, auditDispatcher, httpMetrics)

	scheduleHandler := handlers.NewScheduleHandler(
		addSlotUC,
		addSlotsBulkUC,
		removeSlotUC,
		listDayUC,
		listWeekUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		filterUC,
		setStatusUC,
		deleteUC,
	)

	reportHandler := handlers.NewReportHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)

			booking := publicAPI.Group("/booking/drafts")
			{
				booking.POST("", bookingHandler.Start)
				booking.GET("/:id", bookingHandler.Get)
				booking.PUT("/:id/service", bookingHandler.SetService)
				booking.PUT("/:id/datetime", bookingHandler.SetDateTime)
				booking.PUT("/:id/contact", bookingHandler.SetContact)
				booking.POST("/:id/back", bookingHandler.Back)
				booking.POST("/:id/submit", bookingHandler.Submit)
			}
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN CONSOLE
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.List)
				admin.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
				admin.DELETE("/appointments/:id", appointmentHandler.Delete)

				admin.GET("/schedule/week", scheduleHandler.Week)
				admin.GET("/schedule/day", scheduleHandler.Day)
				admin.POST("/schedule/slots", scheduleHandler.Add)
				admin.POST("/schedule/slots/bulk", scheduleHandler.AddBulk)
				admin.DELETE("/schedule/slots", scheduleHandler.Remove)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/reports/summary", reportHandler.Summary)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
