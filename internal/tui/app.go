// Package tui is the bubbletea front end of the dashboard.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/jask/fitnesstrack/internal/fitness"
	"github.com/jask/fitnesstrack/internal/session"
)

// App ties together views.
type App struct {
	ctx     context.Context
	tabs    *session.TabContext
	theme   *session.ThemeContext
	keys    *KeyRegistry
	data    fitness.Data
	content fitness.Content
	goals   *fitness.GoalStore
	day     fitness.DaySelector
	board   fitness.Leaderboard
	styles  styles
	body    viewport.Model
	year    int

	modal      modalState
	goalEdit   goalEditor
	menuCursor int
	cardCursor int
	gridView   bool
	saveGrid   func(bool) error

	status    string
	statusErr bool
	width     int
	height    int
}

// Options configures New. Tabs and Theme are required.
type Options struct {
	Tabs     *session.TabContext
	Theme    *session.ThemeContext
	Keys     *KeyRegistry
	Data     fitness.Data
	Content  fitness.Content
	GridView bool
	Now      func() time.Time

	// SaveGridView persists the overview layout; nil keeps it for the session.
	SaveGridView func(grid bool) error

	// Status is shown until the first action, e.g. a config warning.
	Status    string
	StatusErr bool
}

type modalState string

const (
	modalNone     modalState = ""
	modalGoal     modalState = "goal"
	modalUserMenu modalState = "userMenu"
)

type goalEditor struct {
	settings fitness.GoalSettings
	stepper  fitness.Stepper
}

type statusMsg string

type errMsg struct{ error }

func New(ctx context.Context, opts Options) *App {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	body := viewport.New(0, 0)
	body.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "space", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
	a := &App{
		ctx:       ctx,
		tabs:      opts.Tabs,
		theme:     opts.Theme,
		keys:      keys,
		data:      opts.Data,
		content:   opts.Content,
		goals:     fitness.NewGoalStore(fitness.DefaultGoals(opts.Data)),
		body:      body,
		year:      now().Year(),
		gridView:  opts.GridView,
		saveGrid:  opts.SaveGridView,
		status:    opts.Status,
		statusErr: opts.StatusErr,
	}
	a.styles = newStyles(paletteFor(a.theme.Theme()))
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	a.refresh()
	return model, cmd
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case statusMsg:
		a.setStatus(string(m))
		return a, nil
	case errMsg:
		a.setError(m.error)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

// scope is the key scope that currently receives input.
func (a *App) scope() string {
	switch {
	case a.modal == modalGoal:
		return scopeGoalModal
	case a.modal == modalUserMenu:
		return scopeUserMenu
	case a.board.Expanded():
		return scopeLeaderboard
	case a.tabs.Active() == session.TabOverview:
		return scopeOverview
	case a.tabs.Active() == session.TabNutrition:
		return scopeNutrition
	case a.tabs.Active() == session.TabSleep:
		return scopeSleep
	}
	return scopeGlobal
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.scope()
	var b *Binding
	if scope == scopeGoalModal || scope == scopeUserMenu {
		b = a.keys.LookupExclusive(m.String(), scope)
	} else {
		b = a.keys.Lookup(m.String(), scope)
	}
	if b == nil {
		if a.modal != modalNone {
			return a, nil
		}
		var cmd tea.Cmd
		a.body, cmd = a.body.Update(m)
		return a, cmd
	}

	switch scope {
	case scopeGoalModal:
		return a.handleGoalModal(b.Action)
	case scopeUserMenu:
		return a.handleUserMenu(b.Action)
	case scopeLeaderboard:
		if cmd, ok := a.handleLeaderboard(b.Action); ok {
			return a, cmd
		}
	case scopeOverview:
		if cmd, ok := a.handleOverview(b.Action); ok {
			return a, cmd
		}
	case scopeNutrition:
		if b.Action == actionSetGoal {
			a.openGoalModal(fitness.MetricWater)
			return a, nil
		}
	case scopeSleep:
		if b.Action == actionSetGoal {
			a.openGoalModal(fitness.MetricSleep)
			return a, nil
		}
	}
	return a.handleGlobal(b.Action)
}

func (a *App) handleGlobal(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionNextTab:
		return a, a.switchTab(a.tabs.Cycle(1))
	case actionPrevTab:
		return a, a.switchTab(a.tabs.Cycle(-1))
	case actionGoOverview, actionGoActivity, actionGoNutrition, actionGoSleep, actionGoWorkouts:
		for i, ta := range tabActions {
			if ta == action {
				return a, a.switchTab(a.tabs.Select(session.Tabs()[i]))
			}
		}
	case actionPrevDay:
		a.day.Advance(fitness.Back)
	case actionNextDay:
		if !a.day.CanGoForward() {
			return a, nil
		}
		a.day.Advance(fitness.Forward)
	case actionToggleTheme:
		return a, a.toggleTheme()
	case actionLeaderboard:
		a.board.Toggle()
	case actionUserMenu:
		a.modal = modalUserMenu
		a.menuCursor = 0
	}
	return a, nil
}

// switchTab applies a tab change and persists it in the background.
func (a *App) switchTab(ev session.TabChanged, ok bool) tea.Cmd {
	if !ok || ev.From == ev.To {
		return nil
	}
	a.body.GotoTop()
	a.cardCursor = 0
	return func() tea.Msg {
		if err := a.tabs.Persist(a.ctx, ev); err != nil {
			log.WithError(err).WithField("tab", ev.To).Warn("persist active tab")
			return errMsg{err}
		}
		log.WithFields(log.Fields{"from": ev.From, "to": ev.To}).Debug("tab changed")
		return nil
	}
}

func (a *App) toggleTheme() tea.Cmd {
	t := a.theme.Toggle()
	a.styles = newStyles(paletteFor(t))
	return func() tea.Msg {
		if err := a.theme.Save(a.ctx, t); err != nil {
			log.WithError(err).WithField("theme", t).Warn("persist theme")
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) persistGridView(grid bool) tea.Cmd {
	if a.saveGrid == nil {
		return nil
	}
	save := a.saveGrid
	return func() tea.Msg {
		if err := save(grid); err != nil {
			log.WithError(err).WithField("grid", grid).Warn("persist overview layout")
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		return
	}
	a.status = fmt.Sprintf("Error: %v", err)
	a.statusErr = true
}

// ---------------------------------------------------------------------------
// Overview and goal modal
// ---------------------------------------------------------------------------

// overviewCards is the card order on the overview grid.
var overviewCards = []fitness.Metric{fitness.MetricSteps, fitness.MetricCalories, metricHeart, fitness.MetricSleep}

// metricHeart has a card but no goal.
const metricHeart fitness.Metric = "heart"

func (a *App) handleOverview(action Action) (tea.Cmd, bool) {
	switch action {
	case actionNavigateUp:
		if a.cardCursor > 0 {
			a.cardCursor--
		}
	case actionNavigateDown:
		if a.cardCursor < len(overviewCards)-1 {
			a.cardCursor++
		}
	case actionToggleView:
		a.gridView = !a.gridView
		return a.persistGridView(a.gridView), true
	case actionSetGoal:
		metric := overviewCards[a.cardCursor]
		if !a.openGoalModal(metric) {
			return func() tea.Msg { return statusMsg("Heart rate has no goal to set") }, true
		}
	default:
		return nil, false
	}
	return nil, true
}

// openGoalModal starts editing metric's goal from its current value.
func (a *App) openGoalModal(metric fitness.Metric) bool {
	settings, ok := fitness.SettingsFor(metric)
	if !ok {
		return false
	}
	a.goalEdit = goalEditor{settings: settings, stepper: settings.Stepper(a.goals.Goal(metric))}
	a.modal = modalGoal
	return true
}

func (a *App) handleGoalModal(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionIncrement:
		a.goalEdit.stepper.Increment()
	case actionDecrement:
		a.goalEdit.stepper.Decrement()
	case actionSave:
		metric := a.goalEdit.settings.Metric
		a.goals.SetGoal(metric, a.goalEdit.stepper.Value)
		a.modal = modalNone
		a.setStatus(fmt.Sprintf("%s set to %s %s", a.goalEdit.settings.Title,
			fitness.FormatGoal(metric, a.goals.Goal(metric)), a.goalEdit.settings.Unit))
		log.WithFields(log.Fields{"metric": metric, "goal": a.goals.Goal(metric)}).Info("goal updated")
	case actionClose:
		a.modal = modalNone
	case actionQuit:
		return a, tea.Quit
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Leaderboard and user menu
// ---------------------------------------------------------------------------

func (a *App) handleLeaderboard(action Action) (tea.Cmd, bool) {
	switch action {
	case actionSwitchBoard:
		if a.board.Scope() == fitness.ScopeFriends {
			a.board.SetScope(fitness.ScopeGlobal)
		} else {
			a.board.SetScope(fitness.ScopeFriends)
		}
	case actionMinimize:
		a.board.Minimize()
	case actionClose:
		a.board.Close()
	default:
		return nil, false
	}
	return nil, true
}

// userMenuItems are the dropdown entries under the account name.
var userMenuItems = []string{"Account Settings", "Sign Out"}

const (
	userName  = "Alex Johnson"
	userEmail = "alex@example.com"
)

func (a *App) handleUserMenu(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionNavigateUp:
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case actionNavigateDown:
		if a.menuCursor < len(userMenuItems)-1 {
			a.menuCursor++
		}
	case actionSelect:
		item := userMenuItems[a.menuCursor]
		a.modal = modalNone
		// There are no accounts behind the menu.
		a.setStatus(item + " is not available in this demo")
	case actionClose:
		a.modal = modalNone
	case actionQuit:
		return a, tea.Quit
	}
	return a, nil
}
