package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	"github.com/atelierops/atelier-scheduler/internal/config"
	"github.com/atelierops/atelier-scheduler/internal/handlers"
	infraRepo "github.com/atelierops/atelier-scheduler/internal/infra/repository"
	"github.com/atelierops/atelier-scheduler/internal/middleware"
	"github.com/atelierops/atelier-scheduler/internal/notify"
	ucAppointment "github.com/atelierops/atelier-scheduler/internal/usecase/appointment"
	ucWork "github.com/atelierops/atelier-scheduler/internal/usecase/work"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(nil)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	scheduleUC := ucAppointment.NewSchedule(
		schedulingRepo,
		auditDispatcher,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		schedulingRepo,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListByDate(schedulingRepo)
	listByMonthUC := ucAppointment.NewListByMonth(schedulingRepo)

	checkAvailabilityUC := ucAppointment.NewCheckAvailability(schedulingRepo)
	dayAvailabilityUC := ucAppointment.NewDayAvailability(
		schedulingRepo,
		cfg.DayStart,
		cfg.DayEnd,
		cfg.SlotGridMinutes,
	)

	// ======================================================
	// USE CASES — WORKS
	// ======================================================
	createWorkUC := ucWork.NewCreate(
		schedulingRepo,
		scheduleUC,
		auditDispatcher,
	)

	advanceWorkUC := ucWork.NewAdvance(
		schedulingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	workshopHandler := handlers.NewWorkshopHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)

	workHandler := handlers.NewWorkHandler(db, createWorkUC, advanceWorkUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleUC,
		setStatusUC,
		listByDateUC,
		listByMonthUC,
		dayAvailabilityUC,
		checkAvailabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/workshop", workshopHandler.GetMeWorkshop)
			secured.PATCH("/me/workshop", workshopHandler.UpdateMeWorkshop)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/categories", categoryHandler.List)
			secured.POST("/me/categories", categoryHandler.Create)
			secured.PATCH("/me/categories/:id", categoryHandler.Update)

			// ------------------------------
			// WORKS
			// ------------------------------
			secured.POST("/me/works", workHandler.Create)
			secured.GET("/me/works", workHandler.List)
			secured.PATCH("/me/works/:id", workHandler.Update)
			secured.PATCH("/me/works/:id/advance", workHandler.Advance)
			secured.DELETE("/me/works/:id", workHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.SetStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
