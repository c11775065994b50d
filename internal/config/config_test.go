package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.GetDataDir())
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, 5, cfg.GetPageSize())
}

func TestLoad_file(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/bikeshare\nlog_level: debug\npage_size: 10\n"), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/bikeshare", cfg.GetDataDir())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 10, cfg.GetPageSize())
}

func TestLoad_envOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/bikeshare\nlog_level: debug\n"), 0600))
	t.Setenv(EnvDataDir, "/tmp/data")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/data", cfg.GetDataDir())
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unterminated\n"), 0600))

	_, err := Load(path)

	assert.ErrorContains(t, err, "parsing config file")
}

func TestGetLogLevel_unknownFallsBack(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestSave_roundTrip(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, Save(path, &Config{DataDir: "data", PageSize: 3}))
	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 3, cfg.PageSize)
}
