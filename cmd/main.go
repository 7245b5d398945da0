package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"event-management-backend/config"
	"event-management-backend/database"
	"event-management-backend/internal/event"
	"event-management-backend/internal/participant"
	"event-management-backend/routes"
)

// @title Event Management API
// @version 1.0
// @description CRUD API for events and participants with PDF/Excel/CSV report export.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&event.Event{},
		&participant.Participant{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Ensure the participants -> events FK exists with SET NULL on delete,
	// so an event delete stays a single statement and leaves no dangling ids
	if err := migrateParticipantEventFK(db); err != nil {
		log.Printf("⚠️ Warning: participant FK migration issue: %v", err)
	}

	// Create uploads directory
	if err := os.MkdirAll(config.UploadPath, os.ModePerm); err != nil {
		panic(fmt.Sprintf("❌ Failed to create upload directory: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("📁 Upload directory: %s\n", config.UploadPath)

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}

func migrateParticipantEventFK(db *gorm.DB) error {
	var count int64
	err := db.Raw(`
		SELECT COUNT(*)
		FROM information_schema.table_constraints
		WHERE table_name = 'participants'
		AND constraint_name = 'fk_participants_event'
	`).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check for participants FK: %v", err)
	}

	if count > 0 {
		return nil
	}

	log.Println("🔄 Adding participants.event_id foreign key (ON DELETE SET NULL)...")
	sql := `ALTER TABLE participants
		ADD CONSTRAINT fk_participants_event
		FOREIGN KEY (event_id) REFERENCES events(id)
		ON DELETE SET NULL;`

	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to add participants FK: %v", err)
	}

	log.Println("✅ participants.event_id foreign key added")
	return nil
}
