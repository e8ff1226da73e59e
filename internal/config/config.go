package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the file paths and serving knobs. Flags override these;
// these override the code defaults.
type Config struct {
	DBPath     string
	SchemaPath string
	SeedPath   string
	Addr       string
	CacheTTL   time.Duration
}

// Load reads configuration from the environment with sane defaults for a
// checkout-local run.
func Load() Config {
	return Config{
		DBPath:     getenv("COURSEBOARD_DB", "db/app.db"),
		SchemaPath: getenv("COURSEBOARD_SCHEMA", "db/schema.sql"),
		SeedPath:   getenv("COURSEBOARD_SEED", "db/seed.sql"),
		Addr:       getenv("COURSEBOARD_ADDR", ":8080"),
		CacheTTL:   time.Duration(getenvInt("COURSEBOARD_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
