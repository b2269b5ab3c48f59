// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database file.
	DBPath string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is how long session tokens stay valid.
	TokenTTL time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "./data/settleup.db"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing any invalid settings.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid token TTL %s: must be positive", c.TokenTTL)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
