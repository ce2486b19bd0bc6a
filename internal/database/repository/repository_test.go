package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fitnesstrack/internal/database"
	"github.com/jask/fitnesstrack/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.PreferenceRepo {
	t.Helper()
	prefs, _ := openRepos(t, 0)
	return prefs
}

func openRepos(t *testing.T, keep int) (*repository.PreferenceRepo, *repository.TabEventRepo) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()
	require.NoError(t, database.RunMigrations(ctx, dbPath))
	// second run is a no-op
	require.NoError(t, database.RunMigrations(ctx, dbPath))

	db, err := database.Open(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewPreferenceRepo(db), repository.NewTabEventRepo(db, keep)
}

func TestPreferenceRepoUpsert(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	_, ok, err := repo.Get(ctx, "activeTab")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(ctx, "activeTab", "sleep"))
	require.NoError(t, repo.Set(ctx, "activeTab", "workouts"))
	require.NoError(t, repo.Set(ctx, "fitness-theme", "dark"))

	v, ok, err := repo.Get(ctx, "activeTab")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "workouts", v)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "activeTab", all[0].Key)
	require.Equal(t, "fitness-theme", all[1].Key)
	require.False(t, all[1].UpdatedAt.IsZero())
}

func TestTabEventRepo(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, events := openRepos(t, 0)

	base := database.Now()
	require.NoError(t, events.Add(ctx, repository.NewTabEvent("overview", "sleep", base)))
	require.NoError(t, events.Add(ctx, repository.NewTabEvent("sleep", "nutrition", base.Add(time.Second))))
	require.NoError(t, events.Add(ctx, repository.NewTabEvent("nutrition", "sleep", base.Add(2*time.Second))))

	recent, err := events.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "sleep", recent[0].To)
	require.Equal(t, "nutrition", recent[0].From)
	require.Equal(t, "nutrition", recent[1].To)
	require.NotEqual(t, recent[0].ID, recent[1].ID)

	counts, err := events.CountByTab(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"sleep": 2, "nutrition": 1}, counts)
}

func TestTabEventRepoTrimsToRetention(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, events := openRepos(t, 2)

	base := database.Now()
	tabs := []string{"activity", "nutrition", "sleep", "workouts"}
	from := "overview"
	for i, to := range tabs {
		require.NoError(t, events.Add(ctx, repository.NewTabEvent(from, to, base.Add(time.Duration(i)*time.Second))))
		from = to
	}

	recent, err := events.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "workouts", recent[0].To)
	require.Equal(t, "sleep", recent[1].To)

	counts, err := events.CountByTab(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"sleep": 1, "workouts": 1}, counts)
}
