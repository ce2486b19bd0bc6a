package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jask/fitnesstrack/internal/config"
	"github.com/jask/fitnesstrack/internal/database"
	"github.com/jask/fitnesstrack/internal/database/repository"
	"github.com/jask/fitnesstrack/internal/fitness"
	"github.com/jask/fitnesstrack/internal/logging"
	"github.com/jask/fitnesstrack/internal/prefs"
	"github.com/jask/fitnesstrack/internal/session"
	"github.com/jask/fitnesstrack/internal/tui"
)

type flags struct {
	printKeys  bool
	printStats bool
}

func main() {
	var f flags
	flag.BoolVar(&f.printKeys, "keys", false, "print the effective keybindings as keybindings.toml and exit")
	flag.BoolVar(&f.printStats, "stats", false, "print stored preferences and tab history and exit")
	flag.Parse()

	if err := run(context.Background(), f, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags, out io.Writer) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logCloser, err := logging.Setup(logging.SetupParams{
		FileName:   cfg.Log.Path,
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.JSON,
	})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logCloser.Close()

	if f.printKeys {
		keys, err := loadKeys(cfg.UI.KeybindingsPath)
		if err != nil {
			return err
		}
		return keys.WriteKeybindings(out)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("open preference store")
		return fmt.Errorf("storage: %w", err)
	}
	defer closeStore.Close()

	if f.printStats {
		return printStats(ctx, store, out)
	}

	st := prepare(ctx, cfg, store)
	log.WithFields(log.Fields{
		"backend": cfg.Storage.Backend,
		"tab":     st.tabs.Active(),
		"theme":   st.theme.Theme(),
	}).Info("starting")

	status := st.status()
	p := tea.NewProgram(tui.New(ctx, tui.Options{
		Tabs:         st.tabs,
		Theme:        st.theme,
		Keys:         st.keys,
		Data:         fitness.MockData(),
		Content:      fitness.MockContent(),
		GridView:     cfg.UI.GridView,
		SaveGridView: gridSaver(cfg),
		Status:       status,
		StatusErr:    status != "",
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// startup is the restored session state plus warnings for the status line.
type startup struct {
	tabs     *session.TabContext
	theme    *session.ThemeContext
	keys     *tui.KeyRegistry
	warnings []string
}

func (s startup) status() string { return strings.Join(s.warnings, "; ") }

// prepare restores the tab and theme and loads keybinding overrides. Nothing
// here is fatal; each failure adds a warning and keeps the default.
func prepare(ctx context.Context, cfg config.Config, s stores) startup {
	var st startup

	def, _ := session.ParseTab(cfg.UI.DefaultTab)
	st.tabs = session.NewTabContextWithDefault(s.prefs, def)
	if err := st.tabs.Load(ctx); err != nil {
		log.WithError(err).Warn("load active tab")
		st.warnings = append(st.warnings, "Could not restore the last tab")
	}
	if s.events != nil {
		st.tabs.Subscribe(recordTabChanges(s.events))
	}

	st.theme = session.NewThemeContext(s.prefs)
	if err := st.theme.Load(ctx); err != nil {
		log.WithError(err).Warn("load theme")
		st.warnings = append(st.warnings, "Could not restore the theme")
	}

	keys, err := loadKeys(cfg.UI.KeybindingsPath)
	if err != nil {
		log.WithError(err).Warn("keybindings")
		st.warnings = append(st.warnings, fmt.Sprintf("Ignoring keybindings: %v", err))
	}
	st.keys = keys
	return st
}

// loadKeys applies the overrides at path. On error the defaults are returned
// alongside it.
func loadKeys(path string) (*tui.KeyRegistry, error) {
	keys := tui.NewKeyRegistry()
	overrides, err := tui.LoadKeybindingsFile(path)
	if err == nil {
		err = keys.ApplyKeybindingConfig(overrides)
	}
	if err != nil {
		return tui.NewKeyRegistry(), err
	}
	return keys, nil
}

// gridSaver writes the overview layout back to the config file.
func gridSaver(cfg config.Config) func(bool) error {
	var mu sync.Mutex
	return func(grid bool) error {
		mu.Lock()
		defer mu.Unlock()
		cfg.UI.GridView = grid
		return config.Save(cfg)
	}
}

// recordTabChanges appends every tab switch to the tab_events table.
func recordTabChanges(events *repository.TabEventRepo) session.Listener {
	return func(ctx context.Context, ev session.TabChanged) {
		if err := events.Add(ctx, repository.NewTabEvent(string(ev.From), string(ev.To), database.Now())); err != nil {
			log.WithError(err).WithField("to", ev.To).Warn("record tab change")
		}
	}
}

type stores struct {
	prefs session.Store

	// sqlite backend
	repo   *repository.PreferenceRepo
	events *repository.TabEventRepo

	// file backend
	file *prefs.FileStore
}

// openStore builds the configured preference backend. The sqlite backend also
// records tab changes.
func openStore(ctx context.Context, cfg config.Config) (stores, io.Closer, error) {
	if cfg.Storage.Backend == config.BackendFile {
		path := cfg.Storage.FilePath
		if path == "" {
			p, err := prefs.DefaultPath()
			if err != nil {
				return stores{}, nil, err
			}
			path = p
		}
		fs := prefs.NewFileStore(path)
		log.WithField("path", fs.Path()).Debug("using preference file")
		return stores{prefs: fs, file: fs}, closerFunc(func() error { return nil }), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return stores{}, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(ctx, cfg.Database.Path); err != nil {
		return stores{}, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return stores{}, nil, err
	}
	repo := repository.NewPreferenceRepo(db)
	return stores{
		prefs:  repo,
		repo:   repo,
		events: repository.NewTabEventRepo(db, cfg.Database.EventRetention),
	}, db, nil
}

// recentEvents is how many tab switches --stats lists.
const recentEvents = 10

func printStats(ctx context.Context, s stores, out io.Writer) error {
	if s.file != nil {
		fmt.Fprintf(out, "Preferences (%s)\n", s.file.Path())
		for _, key := range []string{session.TabKey, session.ThemeKey} {
			v, ok, err := s.file.Get(ctx, key)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}
			if ok {
				fmt.Fprintf(out, "  %-14s %s\n", key, v)
			}
		}
		return nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list preferences: %w", err)
	}
	fmt.Fprintln(out, "Preferences")
	for _, p := range all {
		fmt.Fprintf(out, "  %-14s %-10s %s\n", p.Key, p.Value, p.UpdatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := s.events.CountByTab(ctx)
	if err != nil {
		return fmt.Errorf("count tab visits: %w", err)
	}
	fmt.Fprintln(out, "Tab visits")
	for _, t := range session.Tabs() {
		fmt.Fprintf(out, "  %-14s %d\n", t.Title(), counts[string(t)])
	}

	recent, err := s.events.ListRecent(ctx, recentEvents)
	if err != nil {
		return fmt.Errorf("list tab events: %w", err)
	}
	fmt.Fprintln(out, "Recent switches")
	for _, e := range recent {
		fmt.Fprintf(out, "  %s  %s → %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.From, e.To)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
