// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development a
.env file is loaded first (via godotenv) so local runs need no exported vars.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Snapshot, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Preset backend identifiers.
const (
	PresetBackendRedis    = "redis"
	PresetBackendPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Gamelens API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Snapshot artifact (SQLite file produced by the scraper pipeline)
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"./data/games.db"`

	// SnapshotPollInterval is how often the watcher re-checks the artifact
	// for a new version when no file event was observed.
	SnapshotPollInterval time.Duration `env:"SNAPSHOT_POLL_INTERVAL" envDefault:"5m"`

	// Key-Value Store (Redis): preset document + list cache
	RedisURL string `env:"REDIS_URL,required"`

	// ListCacheTTL bounds how long a cached list ordering is retained.
	ListCacheTTL time.Duration `env:"LIST_CACHE_TTL" envDefault:"60s"`

	// Preset persistence backend: "redis" (default) or "postgres".
	PresetBackend string `env:"PRESET_BACKEND" envDefault:"redis"`

	// Relational Database (PostgreSQL) — required only for the postgres
	// preset backend.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// PublicBaseURL is the front-end URL shareable links point at.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://gamelens.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Best-effort .env loading; absence is normal outside development.
	_ = godotenv.Load()

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field validation that struct tags cannot express.
	switch cfg.PresetBackend {
	case PresetBackendRedis:
	case PresetBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required when PRESET_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("config: unknown PRESET_BACKEND %q (expected %q or %q)",
			cfg.PresetBackend, PresetBackendRedis, PresetBackendPostgres)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins configured via EXTRA_ORIGINS
// (comma-separated), beyond the built-in gamelens.app suffix rule.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, raw := range strings.Split(c.ExtraOrigins, ",") {
		if clean := strings.TrimSpace(raw); clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}
