package routes

import (
	"staffing-backend/internal/api/handlers"
	"staffing-backend/internal/api/middleware"
	"staffing-backend/internal/auth"
	"staffing-backend/internal/config"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, sync service.ExternalSchedulerInterface) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	proposalRepo := repository.NewPendingProposalRepository(db)
	runRepo := repository.NewEngineRunRepository(db)
	rotationRepo := repository.NewRotationAssignmentRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	holidayRepo := repository.NewCompanyHolidayRepository(db)
	overrideRepo := repository.NewAvailabilityOverrideRepository(db)

	// Initialize services
	availabilityService := service.NewAvailabilityService(employeeRepo, overrideRepo, timeOffRepo, holidayRepo, cfg)
	constraintService := service.NewConstraintService(availabilityService, scheduleRepo, cfg)
	conflictService := service.NewConflictService(constraintService, employeeRepo, eventRepo)
	pairingService := service.NewPairingService(db, sync, availabilityService, constraintService, cfg)
	engineService := service.NewEngineService(db, eventRepo, employeeRepo, scheduleRepo, proposalRepo, runRepo, rotationRepo, constraintService, pairingService, cfg)
	reviewService := service.NewReviewService(db, proposalRepo, scheduleRepo, employeeRepo, eventRepo, constraintService, pairingService, sync)
	rosterService := service.NewRosterService(employeeRepo, overrideRepo, timeOffRepo, rotationRepo, validator)
	eventService := service.NewEventService(eventRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(rosterService, availabilityService)
	eventHandler := handlers.NewEventHandler(eventService, pairingService)
	scheduleHandler := handlers.NewScheduleHandler(conflictService, pairingService)
	engineHandler := handlers.NewEngineHandler(engineService, runRepo, proposalRepo)
	proposalHandler := handlers.NewProposalHandler(reviewService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - all endpoints require authentication
	authMiddleware := auth.NewMiddleware(cfg)
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeactivateEmployee)
			employees.GET("/:id/availability", employeeHandler.GetAvailability)
			employees.POST("/:id/overrides", employeeHandler.SetOverride)
			employees.GET("/:id/time-off", employeeHandler.ListTimeOff)
			employees.POST("/:id/time-off", employeeHandler.CreateTimeOff)
		}

		// Rotation routes
		v1.POST("/rotations", employeeHandler.AssignRotation)

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/unstaffed", eventHandler.GetUnstaffedEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/:id/schedule", eventHandler.ScheduleEvent)
		}

		// Schedule routes
		schedules := v1.Group("/schedules")
		{
			schedules.POST("/check", scheduleHandler.CheckSchedule)
			schedules.POST("/:id/reschedule", scheduleHandler.Reschedule)
			schedules.DELETE("/:id", scheduleHandler.Unschedule)
		}

		// Engine routes
		engine := v1.Group("/engine")
		{
			engine.POST("/runs", engineHandler.TriggerRun)
			engine.GET("/runs", engineHandler.ListRuns)
			engine.GET("/runs/:id", engineHandler.GetRun)
			engine.GET("/runs/:id/proposals", engineHandler.GetRunProposals)
		}

		// Proposal review routes
		proposals := v1.Group("/proposals")
		{
			proposals.GET("", proposalHandler.ListProposals)
			proposals.POST("/approve", proposalHandler.ApproveProposals)
			proposals.GET("/:id", proposalHandler.GetProposal)
			proposals.PUT("/:id", proposalHandler.EditProposal)
			proposals.POST("/:id/approve", proposalHandler.ApproveProposal)
			proposals.POST("/:id/reject", proposalHandler.RejectProposal)
			proposals.POST("/:id/submit", proposalHandler.SubmitProposal)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
