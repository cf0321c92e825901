package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	DayOff   DayOffConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// DayOffConfig bounds the bookable day-off window relative to today.
type DayOffConfig struct {
	MinOffsetDays int
	MaxOffsetDays int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftdesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Day-off window configuration
	minOffset, err := strconv.Atoi(getEnv("DAYOFF_MIN_OFFSET_DAYS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAYOFF_MIN_OFFSET_DAYS: %w", err)
	}

	maxOffset, err := strconv.Atoi(getEnv("DAYOFF_MAX_OFFSET_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAYOFF_MAX_OFFSET_DAYS: %w", err)
	}

	config.DayOff = DayOffConfig{
		MinOffsetDays: minOffset,
		MaxOffsetDays: maxOffset,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.DayOff.MinOffsetDays < 0 {
		return fmt.Errorf("DAYOFF_MIN_OFFSET_DAYS must not be negative")
	}
	if c.DayOff.MaxOffsetDays < c.DayOff.MinOffsetDays {
		return fmt.Errorf("DAYOFF_MAX_OFFSET_DAYS must not be smaller than DAYOFF_MIN_OFFSET_DAYS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
