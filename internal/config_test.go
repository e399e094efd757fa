package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "novaframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app_name: planets
log:
  level: debug
frame:
  capacity: 64
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "planets", cfg.AppName)
	require.Equal(t, 64, cfg.Frame.Capacity)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "app_name: x\n"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 0, cfg.Frame.Capacity)

	def := Defaults()
	require.Equal(t, "novaframe", def.AppName)
	require.Equal(t, "info", def.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "read config")
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "frame:\n  capacity: -1\n"))
		require.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "log:\n  level: loud\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "log.level")
	})
}
