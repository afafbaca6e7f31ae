package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed explicitly; no component
// reads the environment after Load returns.
type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTTTL          time.Duration
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            GetEnvAsString("PORT", "8080"),
		DatabaseURL:     GetEnvAsString("DATABASE_URL", ""),
		JWTSecret:       GetEnvAsString("JWT_SECRET", ""),
		JWTTTL:          GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		ShutdownTimeout: GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return cfg, nil
}
