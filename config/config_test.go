package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: postgres
  dsn: "host=localhost user=postgres dbname=social sslmode=disable"
  slow_threshold: 50ms
redis:
  enabled: true
  ttl: 30s
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_DATABASE_DSN", "file:other.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:other.db", cfg.Database.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "mysql", DSN: "x"}}
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverSQLite
	assert.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())
}
