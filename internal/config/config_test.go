package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("FITNESSTRACK_CONFIG", filepath.Join(dir, "config", "fitnesstrack", "config.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, filepath.Join(dir, ".local", "share", "fitnesstrack", "fitnesstrack.db"), cfg.Database.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 1000, cfg.Database.EventRetention)
	require.Equal(t, "overview", cfg.UI.DefaultTab)
	require.True(t, cfg.UI.GridView)
	require.Equal(t, "keybindings.toml", filepath.Base(cfg.UI.KeybindingsPath))
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	isolate(t)
	path := Path()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
backend = "file"

[log]
level = "debug"
json = true

[ui]
default_tab = "sleep"
grid_view = false
`), 0o600))
	t.Setenv("FITNESSTRACK_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.Storage.Backend)
	require.Equal(t, "warn", cfg.Log.Level)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "sleep", cfg.UI.DefaultTab)
	require.False(t, cfg.UI.GridView)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("FITNESSTRACK_STORAGE_BACKEND", "redis")
	_, err := Load()
	require.ErrorContains(t, err, "storage.backend")
}

func TestLoadRejectsNegativeRetention(t *testing.T) {
	isolate(t)
	t.Setenv("FITNESSTRACK_DATABASE_EVENT_RETENTION", "-1")
	_, err := Load()
	require.ErrorContains(t, err, "event_retention")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	want := Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "x.db"), EventRetention: 50},
		Storage:  StorageConfig{Backend: BackendSQLite},
		Log:      LogConfig{Path: filepath.Join(dir, "x.log"), Level: "error"},
		UI:       UIConfig{DefaultTab: "workouts", GridView: false, KeybindingsPath: filepath.Join(dir, "keys.toml")},
	}
	require.NoError(t, Save(want))
	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
