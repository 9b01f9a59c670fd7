package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	configData := []byte(`
PORT=8080
ENVIRONMENT=development
VERSION=1.2.0
CACHE_EXPIRATION=1m
CACHE_CLEANUP=2m
RATE_LIMIT_RPS=5
RATE_LIMIT_BURST=10
RANDOM_SEED=42
`)
	require.NoError(t, os.WriteFile(path, configData, 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "1.2.0", config.Version)
	assert.Equal(t, time.Minute, config.CacheExpiration)
	assert.Equal(t, 2*time.Minute, config.CacheCleanup)
	assert.Equal(t, 5.0, config.RateLimitRPS)
	assert.Equal(t, 10, config.RateLimitBurst)
	assert.Equal(t, uint64(42), config.RandomSeed)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9000\n"), 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 5*time.Minute, config.CacheExpiration)
	assert.Equal(t, 4, config.RateLimitBurst)
	assert.Zero(t, config.RandomSeed)
}

func TestLoadConfig_Missing(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "4000", config.Port)
	assert.Equal(t, "1.0.0", config.Version)
	assert.Equal(t, 10*time.Minute, config.CacheCleanup)
	assert.Equal(t, 2.0, config.RateLimitRPS)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RATE_LIMIT_BURST=lots\n"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
