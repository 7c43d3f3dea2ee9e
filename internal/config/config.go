package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string

	// Booking engine knobs. These must stay injectable so rate policy is
	// testable and swappable per deployment.
	BookingUnitHours      int
	CleaningBufferMinutes int
	DefaultPerPage        int
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:           getEnv("ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		BookingUnitHours:      getEnvInt("BOOKING_UNIT_HOURS", 12),
		CleaningBufferMinutes: getEnvInt("CLEANING_BUFFER_MINUTES", 30),
		DefaultPerPage:        getEnvInt("DEFAULT_PER_PAGE", 15),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if cfg.BookingUnitHours <= 0 {
		return nil, fmt.Errorf("BOOKING_UNIT_HOURS must be positive, got %d", cfg.BookingUnitHours)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
