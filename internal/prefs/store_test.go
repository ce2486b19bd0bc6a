package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	s := NewFileStore(path)

	_, ok, err := s.Get(ctx, "activeTab")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "activeTab", "nutrition"))
	require.NoError(t, s.Set(ctx, "fitness-theme", "dark"))

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(ctx, "activeTab")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "nutrition", v)
	v, _, _ = reopened.Get(ctx, "fitness-theme")
	require.Equal(t, "dark", v)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s := NewFileStore(path)
	_, _, err := s.Get(context.Background(), "activeTab")
	require.Error(t, err)
	require.Error(t, s.Set(context.Background(), "activeTab", "sleep"))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	p, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, prefsFile, filepath.Base(p))
	require.Equal(t, "fitnesstrack", filepath.Base(filepath.Dir(p)))
}
