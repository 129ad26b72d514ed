// Package config provides configuration for the chat service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration. It is loaded once at startup and
// injected into each component; there is no ambient global configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// Completion upstream
	GeminiAPIURL      string
	GeminiModel       string
	GeminiAPIKey      string
	CompletionTimeout time.Duration

	// Logging
	LogLevel string
	LogFile  string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("PORT", 5000),
		DatabaseURL:       getEnv("DATABASE_URL", "file:aidoctor.db?cache=shared&mode=rwc"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		GeminiAPIURL:      getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		CompletionTimeout: time.Duration(getEnvInt("COMPLETION_TIMEOUT_MS", 30000)) * time.Millisecond,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
