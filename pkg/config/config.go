package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/database"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string
	LogSource bool

	// Storage
	TasksDriver string
	TasksFile   string
	SQLitePath  string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogSource: getBoolEnv("LOG_SOURCE", false),

		TasksDriver: strings.ToLower(getEnv("TASKS_DRIVER", string(database.DriverJSON))),
		TasksFile:   getEnv("TASKS_FILE", "tasks.json"),
		SQLitePath:  getEnv("SQLITE_PATH", "tasks.db"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to build the app.
func (c *Config) Validate() error {
	driver, err := database.ParseDriver(c.TasksDriver)
	if err != nil {
		return fmt.Errorf("invalid TASKS_DRIVER: %w", err)
	}
	switch driver {
	case database.DriverJSON:
		if strings.TrimSpace(c.TasksFile) == "" {
			return fmt.Errorf("TASKS_FILE cannot be empty")
		}
	case database.DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH cannot be empty")
		}
	}
	return nil
}

// Driver returns the configured storage driver.
func (c *Config) Driver() database.Driver {
	driver, err := database.ParseDriver(c.TasksDriver)
	if err != nil {
		return database.DriverJSON
	}
	return driver
}

// StoragePath returns the path used by the configured driver.
func (c *Config) StoragePath() string {
	if c.Driver() == database.DriverSQLite {
		return c.SQLitePath
	}
	return c.TasksFile
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
