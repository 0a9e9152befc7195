package app

import (
	"os"
	"strconv"
	"time"

	"github.com/yklabs/portal/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Optional: issuer claim for tokens (default: portal)
	JWTSecret string        // Required in prod: HS256 signing secret
	TokenTTL  time.Duration // Optional: token lifetime (default: 168h)

	StoreDriver  string // Optional: store driver (memory, sqlite) (default: memory)
	DatabaseFile string // Optional: path to SQLite database file (default: ./portal.db)
	SeedDemoData bool   // Optional: seed demo accounts and catalogue (default: true)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("PORTAL_ISSUER", "portal"),
		JWTSecret: os.Getenv("PORTAL_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("PORTAL_TOKEN_TTL", jwtx.DefaultTokenTTL),

		StoreDriver:  getEnvOrDefault("PORTAL_STORE_DRIVER", "memory"),
		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		SeedDemoData: getEnvBoolOrDefault("PORTAL_SEED_DEMO_DATA", true),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORTAL_PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		// Dev fallback only; a real deployment must set PORTAL_JWT_SECRET.
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as hours, matching how the token TTL is
	// usually expressed.
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
