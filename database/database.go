package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"event-management-backend/config"
)

// DB is the shared connection pool. GORM pools connections internally,
// so it is safe for concurrent use by all repositories.
var DB *gorm.DB

// Connect opens the Postgres connection pool and stores it in DB.
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to Postgres: %v", err)
	}

	log.Println("✅ Connected to Postgres")
	DB = db
	return db
}
