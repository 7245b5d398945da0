package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-management-backend/config"
	"event-management-backend/database"
	"event-management-backend/internal/event"
	"event-management-backend/internal/participant"
	"event-management-backend/internal/reports"
	"event-management-backend/middleware"

	_ "event-management-backend/docs"
)

// Setup binds every route. All /api routes sit behind the x-api-key check;
// health, swagger and the uploaded photos stay open.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded participant photos are served statically
	r.Static("/uploads", config.UploadPath)

	api := r.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg))

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventService := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventService)

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", eventHandler.List)
		eventGroup.GET("/:id", eventHandler.Get)
		eventGroup.POST("", eventHandler.Create)
		eventGroup.PUT("/:id", eventHandler.Update)
		eventGroup.DELETE("/:id", eventHandler.Delete)
	}

	// ========== Participants ==========
	participantRepo := participant.NewRepository(database.DB)
	participantService := participant.NewService(participantRepo)
	participantHandler := participant.NewHandler(participantService)

	participantGroup := api.Group("/participants")
	{
		participantGroup.GET("", participantHandler.List)
		participantGroup.GET("/:id", participantHandler.Get)
		participantGroup.GET("/event/:eventId", participantHandler.ListByEvent)
		participantGroup.POST("", participantHandler.Create)
		participantGroup.PUT("/:id", participantHandler.Update)
		participantGroup.DELETE("/:id", participantHandler.Delete)
	}

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsExporter := reports.NewReportExporter()
	reportsService := reports.NewReportService(reportsRepo, reportsExporter)
	reportsHandler := reports.NewHandler(reportsService)

	reportGroup := api.Group("/reports")
	{
		reportGroup.GET("/participants/export/:format", reportsHandler.ExportParticipants)
		reportGroup.GET("/events/export/:format", reportsHandler.ExportEvents)
	}
}
