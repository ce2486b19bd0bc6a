package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) (string, bool, error) { return "", false, s.err }
func (s failingStore) Set(context.Context, string, string) error         { return s.err }

func TestTabContextLoadFallsBack(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		stored map[string]string
		want   Tab
	}{
		{"missing", nil, TabOverview},
		{"invalid", map[string]string{TabKey: "settings"}, TabOverview},
		{"valid", map[string]string{TabKey: "sleep"}, TabSleep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			for k, v := range tt.stored {
				require.NoError(t, store.Set(ctx, k, v))
			}
			tc := NewTabContext(store)
			require.NoError(t, tc.Load(ctx))
			require.Equal(t, tt.want, tc.Active())
		})
	}
}

func TestTabContextLoadErrorKeepsDefault(t *testing.T) {
	tc := NewTabContext(failingStore{err: errors.New("disk gone")})
	err := tc.Load(context.Background())
	require.Error(t, err)
	require.Equal(t, DefaultTab, tc.Active())
}

func TestSetActivePersistsAndDispatches(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tc := NewTabContext(store)

	var got []TabChanged
	tc.Subscribe(func(_ context.Context, ev TabChanged) { got = append(got, ev) })

	require.NoError(t, tc.SetActive(ctx, TabNutrition))
	require.NoError(t, tc.SetActive(ctx, TabWorkouts))

	v, ok, err := store.Get(ctx, TabKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "workouts", v)
	require.Equal(t, []TabChanged{
		{From: TabOverview, To: TabNutrition},
		{From: TabNutrition, To: TabWorkouts},
	}, got)

	// a fresh context restores the last tab
	restored := NewTabContext(store)
	require.NoError(t, restored.Load(ctx))
	require.Equal(t, TabWorkouts, restored.Active())
}

func TestSetActiveRejectsUnknownTab(t *testing.T) {
	tc := NewTabContext(NewMemoryStore())
	require.Error(t, tc.SetActive(context.Background(), Tab("settings")))
	require.Equal(t, TabOverview, tc.Active())
}

func TestPersistNotifiesEvenWhenWriteFails(t *testing.T) {
	tc := NewTabContext(failingStore{err: errors.New("read-only")})
	called := false
	tc.Subscribe(func(context.Context, TabChanged) { called = true })
	err := tc.SetActive(context.Background(), TabSleep)
	require.Error(t, err)
	require.True(t, called)
	require.Equal(t, TabSleep, tc.Active())
}

func TestCycleWraps(t *testing.T) {
	tc := NewTabContext(NewMemoryStore())
	ev, ok := tc.Cycle(-1)
	require.True(t, ok)
	require.Equal(t, TabWorkouts, ev.To)
	tc.Cycle(1)
	require.Equal(t, TabOverview, tc.Active())
	tc.Cycle(2)
	require.Equal(t, TabNutrition, tc.Active())
}

func TestTabsOrderAndTitles(t *testing.T) {
	require.Equal(t, []Tab{TabOverview, TabActivity, TabNutrition, TabSleep, TabWorkouts}, Tabs())
	require.Equal(t, "Nutrition", TabNutrition.Title())
	require.Equal(t, 3, TabSleep.Index())
	require.Equal(t, -1, Tab("x").Index())
}

func TestThemeContext(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	th := NewThemeContext(store)
	require.NoError(t, th.Load(ctx))
	require.Equal(t, ThemeLight, th.Theme())

	require.Equal(t, ThemeDark, th.Toggle())
	require.True(t, th.Dark())
	require.NoError(t, th.Save(ctx, th.Theme()))

	v, _, _ := store.Get(ctx, ThemeKey)
	require.Equal(t, "dark", v)

	restored := NewThemeContext(store)
	require.NoError(t, restored.Load(ctx))
	require.Equal(t, ThemeDark, restored.Theme())
	require.Equal(t, ThemeLight, restored.Toggle())

	require.NoError(t, store.Set(ctx, ThemeKey, "sepia"))
	fallback := NewThemeContext(store)
	require.NoError(t, fallback.Load(ctx))
	require.Equal(t, ThemeLight, fallback.Theme())
}

func TestConfiguredDefaultTab(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tc := NewTabContextWithDefault(store, TabSleep)
	require.NoError(t, tc.Load(ctx))
	require.Equal(t, TabSleep, tc.Active())

	require.NoError(t, store.Set(ctx, TabKey, "activity"))
	tc = NewTabContextWithDefault(store, TabSleep)
	require.NoError(t, tc.Load(ctx))
	require.Equal(t, TabActivity, tc.Active())

	require.Equal(t, TabOverview, NewTabContextWithDefault(store, Tab("bogus")).Active())
}

// slowStore delays its first write, like a busy sqlite connection.
type slowStore struct {
	*MemoryStore
	mu     sync.Mutex
	writes int
	delay  time.Duration
}

func (s *slowStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.writes++
	first := s.writes == 1
	s.mu.Unlock()
	if first {
		time.Sleep(s.delay)
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestConcurrentPersistStoresLatestTab(t *testing.T) {
	ctx := context.Background()
	store := &slowStore{MemoryStore: NewMemoryStore(), delay: 50 * time.Millisecond}
	tc := NewTabContext(store)

	first, ok := tc.Select(TabActivity)
	require.True(t, ok)
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		close(started)
		require.NoError(t, tc.Persist(ctx, first))
	}()
	<-started
	// Let the first write reach the slow store before the second switch.
	time.Sleep(10 * time.Millisecond)

	second, ok := tc.Select(TabNutrition)
	require.True(t, ok)
	go func() {
		defer wg.Done()
		require.NoError(t, tc.Persist(ctx, second))
	}()
	wg.Wait()

	v, ok, err := store.Get(ctx, TabKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "nutrition", v)
	require.Equal(t, TabNutrition, tc.Active())
}
