package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTokenLifetime is used when JWT_EXPIRE is missing or unparseable.
const DefaultTokenLifetime = 7 * 24 * time.Hour

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpire   string
	FrontendURL string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpire:   getEnv("JWT_EXPIRE", "7d"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
	return cfg
}

// TokenLifetime parses the configured JWT_EXPIRE value.
func (c Config) TokenLifetime() time.Duration {
	return ParseLifetime(c.JWTExpire)
}

// ParseLifetime parses lifetimes of the form "<N>d" (days) or "<N>h" (hours).
// Anything else falls back to DefaultTokenLifetime.
func ParseLifetime(s string) time.Duration {
	if len(s) < 2 {
		return DefaultTokenLifetime
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return DefaultTokenLifetime
	}
	switch {
	case strings.HasSuffix(s, "d"):
		return time.Duration(n) * 24 * time.Hour
	case strings.HasSuffix(s, "h"):
		return time.Duration(n) * time.Hour
	}
	return DefaultTokenLifetime
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
