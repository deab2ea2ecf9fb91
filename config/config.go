// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Settings  SettingsConfig
	Reminder  ReminderConfig
	Email     EmailConfig
	Inventory InventoryConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds the inventory store configuration.
// Driver is "sqlite" (URL is a file path or DSN) or "postgres".
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// SettingsConfig selects where presentation preferences are stored.
// Backend is "database" or "redis".
type SettingsConfig struct {
	Backend string
}

// ReminderConfig holds the weekly reminder configuration.
// Disabling it keeps reminder settings editable but never fires them.
type ReminderConfig struct {
	Enabled  bool
	Timezone string
	Title    string
	Body     string
}

// EmailConfig holds email service configuration.
// Reminders are logged instead of emailed when ResendAPIKey is empty.
type EmailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	FromName      string
	FromEmail     string
	Recipient     string
}

// InventoryConfig holds inventory presentation configuration.
type InventoryConfig struct {
	CollationLocale string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			URL:             getEnv("DATABASE_URL", "inventory.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 0),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Settings: SettingsConfig{
			Backend: strings.ToLower(getEnv("SETTINGS_BACKEND", "database")),
		},
		Reminder: ReminderConfig{
			Enabled:  getEnvAsBool("REMINDER_ENABLED", true),
			Timezone: getEnv("REMINDER_TIMEZONE", "Local"),
			Title:    getEnv("REMINDER_TITLE", "Inventory"),
			Body:     getEnv("REMINDER_BODY", "Time to check your inventory!"),
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			ResendBaseURL: getEnv("RESEND_BASE_URL", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Inventory Tracker"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			Recipient:     getEnv("REMINDER_RECIPIENT", ""),
		},
		Inventory: InventoryConfig{
			CollationLocale: getEnv("INVENTORY_LOCALE", "en"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// SlogLevel converts the configured level name to a slog.Level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Location resolves the reminder timezone, falling back to the local zone.
func (c ReminderConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("Invalid reminder timezone, using local time", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
