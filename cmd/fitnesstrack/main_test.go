package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/fitnesstrack/internal/config"
	"github.com/jask/fitnesstrack/internal/session"
)

// isolate points config, data and log paths into a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("FITNESSTRACK_CONFIG", filepath.Join(dir, "config", "fitnesstrack", "config.toml"))
	t.Setenv("FITNESSTRACK_DATABASE_PATH", filepath.Join(dir, "data", "fitness.db"))
	t.Setenv("FITNESSTRACK_UI_KEYBINDINGS_PATH", filepath.Join(dir, "config", "fitnesstrack", "keybindings.toml"))
	return dir
}

func TestOpenStoreSQLiteRecordsTabChanges(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "fitness.db")

	s, closer, err := openStore(ctx, cfg)
	require.NoError(t, err)
	defer closer.Close()
	require.NotNil(t, s.events)

	tabs := session.NewTabContext(s.prefs)
	tabs.Subscribe(recordTabChanges(s.events))
	require.NoError(t, tabs.SetActive(ctx, session.TabSleep))

	v, ok, err := s.prefs.Get(ctx, session.TabKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "sleep", v)

	recent, err := s.events.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "overview", recent[0].From)
	require.Equal(t, "sleep", recent[0].To)
}

func TestOpenStoreFileBackend(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.FilePath = filepath.Join(t.TempDir(), "prefs.json")

	s, closer, err := openStore(ctx, cfg)
	require.NoError(t, err)
	defer closer.Close()
	require.Nil(t, s.events)
	require.Equal(t, cfg.Storage.FilePath, s.file.Path())

	theme := session.NewThemeContext(s.prefs)
	require.NoError(t, theme.Save(ctx, theme.Toggle()))

	reloaded := session.NewThemeContext(s.prefs)
	require.NoError(t, reloaded.Load(ctx))
	require.True(t, reloaded.Dark())
}

func TestRunPrintsKeybindings(t *testing.T) {
	dir := isolate(t)
	var out strings.Builder

	require.NoError(t, run(context.Background(), flags{printKeys: true}, &out))
	require.Contains(t, out.String(), "[[binding]]")
	require.Contains(t, out.String(), `action = "toggle_theme"`)

	_, err := os.Stat(filepath.Join(dir, "data", "fitness.db"))
	require.True(t, os.IsNotExist(err), "--keys must not open the database")
}

func TestRunKeysFailsOnBrokenKeybindings(t *testing.T) {
	isolate(t)
	path := os.Getenv("FITNESSTRACK_UI_KEYBINDINGS_PATH")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[[binding]\n"), 0o644))

	var out strings.Builder
	err := run(context.Background(), flags{printKeys: true}, &out)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRunPrintsStats(t *testing.T) {
	isolate(t)
	ctx := context.Background()

	cfg, err := config.Load()
	require.NoError(t, err)
	s, closer, err := openStore(ctx, cfg)
	require.NoError(t, err)
	tabs := session.NewTabContext(s.prefs)
	tabs.Subscribe(recordTabChanges(s.events))
	require.NoError(t, tabs.SetActive(ctx, session.TabSleep))
	require.NoError(t, tabs.SetActive(ctx, session.TabWorkouts))
	require.NoError(t, closer.Close())

	var out strings.Builder
	require.NoError(t, run(ctx, flags{printStats: true}, &out))
	got := out.String()
	require.Contains(t, got, "activeTab")
	require.Contains(t, got, "workouts")
	require.Contains(t, got, "sleep → workouts")
	require.Contains(t, got, "overview → sleep")
	require.Regexp(t, `Sleep\s+1\n`, got)
	require.Regexp(t, `Overview\s+0\n`, got)
}

func TestPrintStatsFileBackend(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.FilePath = filepath.Join(t.TempDir(), "prefs.json")

	s, closer, err := openStore(ctx, cfg)
	require.NoError(t, err)
	defer closer.Close()
	require.NoError(t, s.prefs.Set(ctx, session.ThemeKey, "dark"))

	var out strings.Builder
	require.NoError(t, printStats(ctx, s, &out))
	require.Contains(t, out.String(), cfg.Storage.FilePath)
	require.Regexp(t, `fitness-theme\s+dark`, out.String())
	require.NotContains(t, out.String(), "activeTab")
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk I/O error")
}

func (brokenStore) Set(context.Context, string, string) error { return errors.New("disk I/O error") }

func TestPrepareKeepsEveryWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[binding]]\nscope = \"global\"\naction = \"no_such_action\"\nkeys = [\"x\"]\n"), 0o644))

	var cfg config.Config
	cfg.UI.DefaultTab = "sleep"
	cfg.UI.KeybindingsPath = path

	st := prepare(context.Background(), cfg, stores{prefs: brokenStore{}})
	status := st.status()
	require.Contains(t, status, "Could not restore the last tab")
	require.Contains(t, status, "Could not restore the theme")
	require.Contains(t, status, "Ignoring keybindings")
	require.Equal(t, session.TabSleep, st.tabs.Active())
	require.NotNil(t, st.keys)
}

func TestPrepareCleanStartHasNoStatus(t *testing.T) {
	var cfg config.Config
	st := prepare(context.Background(), cfg, stores{prefs: session.NewMemoryStore()})
	require.Empty(t, st.status())
	require.Equal(t, session.DefaultTab, st.tabs.Active())
}

func TestGridSaverWritesConfig(t *testing.T) {
	isolate(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	require.True(t, cfg.UI.GridView)

	save := gridSaver(cfg)
	require.NoError(t, save(false))

	reloaded, err := config.Load()
	require.NoError(t, err)
	require.False(t, reloaded.UI.GridView)
	require.Equal(t, cfg.Database.Path, reloaded.Database.Path)
}
