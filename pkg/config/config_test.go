package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DatabaseConnectRetryCount)
	assert.Equal(t, 2*time.Second, cfg.DatabaseConnectRetryDelay)
	assert.Equal(t, 5*time.Second, cfg.DatabaseBusyTimeout)
	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, 0, cfg.ServerPort)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNewWithConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
database_file_path: /data/catalog.sqlite
server_port: 8080
database_debug: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.sqlite", cfg.DatabaseFilePath)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.DatabaseDebug)
}

func TestNewEnvVarOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
database_file_path: /data/from-file.sqlite
server_port: 8080
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("SHELFKEEPER_DATABASE_FILE_PATH", "/data/from-env.sqlite")
	t.Setenv("SHELFKEEPER_SERVER_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.sqlite", cfg.DatabaseFilePath)
	assert.Equal(t, 9090, cfg.ServerPort)
}

func TestNewMissingConfigFile(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := New()
	assert.Error(t, err)
}

func TestNewProductionDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/shelfkeeper.sqlite", cfg.DatabaseFilePath)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 3690, cfg.ServerPort)
	assert.False(t, cfg.DatabaseDebug)
}
