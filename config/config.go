package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBUrl   string
	GinMode string
	// Logging
	LogLevel string
	// CORS: explicit origins, or "*" for any
	AllowedOrigins []string
	// Connection pool
	DBMaxConns int32
	DBMinConns int32
	// Startup / shutdown
	RunMigrations   bool
	ShutdownTimeout time.Duration
}

var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")

func LoadConfig() (*Config, error) {
	// .env is optional: only present in local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBMaxConns:      int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:      int32(getEnvInt("DB_MIN_CONNS", 5)),
		RunMigrations:   getEnvBool("RUN_MIGRATIONS", true),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	cfg.AllowedOrigins = parseOrigins(getEnv("CORS_ALLOWED_ORIGINS", getEnv("FRONTEND_URL", "")))
	if len(cfg.AllowedOrigins) == 0 && !cfg.IsRelease() {
		cfg.AllowedOrigins = []string{"*"}
	}

	if cfg.DBUrl == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		cfg.DBMinConns = cfg.DBMaxConns
	}

	return cfg, nil
}

func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func parseOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		// Trailing slashes would never match the browser's Origin header
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
