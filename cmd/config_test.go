package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"creational/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults when environment is empty", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		t.Setenv("SETTINGS_FILE", "")
		t.Setenv("SETTINGS_RELOAD_SCHEDULE", "")
		t.Setenv("LOG_LEVEL", "")

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, cmd.DefaultHTTPPort, config.HTTPPort)
		assert.Empty(t, config.SettingsFile)
		assert.Equal(t, cmd.DefaultSettingsReloadSchedule, config.SettingsReloadSchedule)
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
	})

	t.Run("should read values from environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("SETTINGS_FILE", "/etc/creational/settings.env")
		t.Setenv("SETTINGS_RELOAD_SCHEDULE", "@every 5m")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := cmd.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "/etc/creational/settings.env", config.SettingsFile)
		assert.Equal(t, "@every 5m", config.SettingsReloadSchedule)
		assert.Equal(t, slog.LevelDebug, config.LogLevel)
	})

	t.Run("should prefer environment over env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=7070\nLOG_LEVEL=warn\n"), 0o600))
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("LOG_LEVEL", "")

		config, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
	})

	t.Run("should reject unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := cmd.LoadConfig("")

		require.Error(t, err)
	})
}
