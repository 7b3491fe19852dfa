package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool sizing defaults. The control plane is the only writer, but claim
// transactions from many runners can pile up, so the pool leans larger
// than a typical CRUD service.
const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5
)

// LoadConfigFromEnv builds the database configuration from DB_* environment
// variables, falling back to local-development defaults.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, err := strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", strconv.Itoa(defaultMaxOpenConns)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := strconv.Atoi(envOr("DB_MAX_IDLE_CONNS", strconv.Itoa(defaultMaxIdleConns)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	return Config{
		Host:            envOr("DB_HOST", "localhost"),
		Port:            port,
		User:            envOr("DB_USER", "fleetd"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "fleetd"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
