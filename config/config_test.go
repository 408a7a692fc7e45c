package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/staticd/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3600, cfg.Cache.Seconds)
	assert.False(t, cfg.Cache.UseExpiresHeader)
	assert.True(t, cfg.Cache.UseCacheControlHeader)
	assert.True(t, cfg.Cache.UseCacheControlNoStore)
	assert.False(t, cfg.Cache.AlwaysMustRevalidate)
	assert.Empty(t, cfg.Locations)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
locations:
  - type: dir
    path: ./public
  - type: zip
    path: ./assets.zip
cache:
  seconds: 0
  use_cache_control_no_store: true
log:
  level: debug
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	require.Len(t, cfg.Locations, 2)
	assert.Equal(t, "dir", cfg.Locations[0].Type)
	assert.Equal(t, "./public", cfg.Locations[0].Path)
	assert.Equal(t, "zip", cfg.Locations[1].Type)
	assert.Equal(t, "./assets.zip", cfg.Locations[1].Path)
	assert.Equal(t, 0, cfg.Cache.Seconds)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STATICD_SERVER_PORT", "7070")
	t.Setenv("STATICD_LOG_LEVEL", "warn")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidLocationType(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
locations:
  - type: ftp
    path: ./public
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	_, err = config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}

func TestCacheConfig_Policy(t *testing.T) {
	cfg := config.CacheConfig{
		Seconds:                3600,
		UseExpiresHeader:       true,
		UseCacheControlHeader:  true,
		UseCacheControlNoStore: false,
		AlwaysMustRevalidate:   true,
	}

	policy := cfg.Policy()

	assert.Equal(t, 3600, policy.CacheSeconds)
	assert.True(t, policy.UseExpiresHeader)
	assert.True(t, policy.UseCacheControlHeader)
	assert.False(t, policy.UseCacheControlNoStore)
	assert.True(t, policy.AlwaysMustRevalidate)
}
