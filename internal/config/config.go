package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host        string
	Port        string
	Environment string

	// Database
	MongoURI      string
	MongoDatabase string

	// Auth
	JWTSecret          string
	JWTExpirationHours int
	BcryptCost         int

	// Event listings
	EventCacheTTL time.Duration
}

// Load builds the configuration once at startup. A missing signing
// secret or database URI is an error: the process must not come up
// half-configured and fail open on authenticated routes.
func Load() (*Config, error) {
	// A .env file is optional; variables may come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "5000"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DB", "eventsnow"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		BcryptCost:         getEnvInt("BCRYPT_COST", 10),
		EventCacheTTL:      time.Duration(getEnvInt("EVENT_CACHE_TTL_SECONDS", 60)) * time.Second,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
