package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "medicalTracker_", cfg.Storage.KeyPrefix)
	assert.Equal(t, "medtracker.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.False(t, cfg.App.IsDevelopment())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "STORAGE_DRIVER=Redis\nREDIS_DB=3\nAPP_ENV=development\nKEY_PREFIX=test_\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("KEY_PREFIX", "env_")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "env_", cfg.Storage.KeyPrefix, "environment overrides the file")
}
