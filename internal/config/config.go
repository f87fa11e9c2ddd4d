package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Workday  WorkdayConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// WorkdayConfig holds the workday policy thresholds. Defaults mirror the
// company rulebook: delay after 08:10, overtime eligibility after 16:00,
// an 8-hour standard day.
type WorkdayConfig struct {
	DelayCutoff        time.Duration
	OvertimeCutoff     time.Duration
	StandardDayMinutes int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
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
		Name:     getEnv("DB_NAME", "worktime"),
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

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Workday policy configuration
	delayCutoff, err := time.ParseDuration(getEnv("WORKDAY_DELAY_CUTOFF", "8h10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_DELAY_CUTOFF: %w", err)
	}

	overtimeCutoff, err := time.ParseDuration(getEnv("WORKDAY_OVERTIME_CUTOFF", "16h"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_OVERTIME_CUTOFF: %w", err)
	}

	standardDay, err := strconv.Atoi(getEnv("WORKDAY_STANDARD_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_STANDARD_MINUTES: %w", err)
	}

	config.Workday = WorkdayConfig{
		DelayCutoff:        delayCutoff,
		OvertimeCutoff:     overtimeCutoff,
		StandardDayMinutes: standardDay,
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Workday.StandardDayMinutes <= 0 {
		return fmt.Errorf("WORKDAY_STANDARD_MINUTES must be positive")
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
