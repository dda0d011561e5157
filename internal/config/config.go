// Package config loads runtime configuration from the environment, with a
// local .env file honored for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for consumers of the library.
type Config struct {
	Redis  RedisConfig
	Sheets SheetsConfig
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SheetsConfig controls the evaluated-sheet cache.
type SheetsConfig struct {
	// TTL bounds how long cached sheets live. Zero disables expiry.
	TTL time.Duration
}

// Load reads configuration from environment variables, first loading a
// local .env file when one exists.
func Load() (*Config, error) {
	// missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Sheets: SheetsConfig{
			TTL: getEnvAsDurationOrDefault("SHEET_CACHE_TTL", 24*time.Hour),
		},
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
