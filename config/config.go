package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// UploadPath is where participant photos are stored and served from.
var UploadPath = "./uploads"

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Shared secret expected in the x-api-key header on every /api route
	APIKey string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	if path := os.Getenv("UPLOAD_PATH"); path != "" {
		UploadPath = path
	}

	cfg := &Config{
		Port: os.Getenv("PORT"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		APIKey: os.Getenv("API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.APIKey == "" {
		log.Println("⚠️ API_KEY is not set, all /api requests will be rejected")
	}

	return cfg
}
