// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults are applied when only required vars are set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "./data/games.db", cfg.SnapshotPath)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotPollInterval)
	assert.Equal(t, config.PresetBackendRedis, cfg.PresetBackend)
}

/*
TestLoad_PostgresBackendRequiresDSN verifies the cross-field backend rule.
*/
func TestLoad_PostgresBackendRequiresDSN(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PRESET_BACKEND", "postgres")

	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gamelens")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.PresetBackendPostgres, cfg.PresetBackend)
}

/*
TestLoad_UnknownBackendRejected verifies fail-fast on configuration typos.
*/
func TestLoad_UnknownBackendRejected(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PRESET_BACKEND", "dynamodb")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestAllowedOrigins parses the comma-separated EXTRA_ORIGINS list.
*/
func TestAllowedOrigins(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("EXTRA_ORIGINS", "https://staging.example.com, https://preview.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://staging.example.com",
		"https://preview.example.com",
	}, cfg.AllowedOrigins())
}
