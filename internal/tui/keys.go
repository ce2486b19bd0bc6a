package tui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key names to actions per scope, falling back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal      = "global"
	scopeOverview    = "overview"
	scopeNutrition   = "nutrition"
	scopeSleep       = "sleep"
	scopeGoalModal   = "goal_modal"
	scopeLeaderboard = "leaderboard"
	scopeUserMenu    = "user_menu"
)

const (
	actionQuit         Action = "quit"
	actionNextTab      Action = "next_tab"
	actionPrevTab      Action = "prev_tab"
	actionGoOverview   Action = "go_overview"
	actionGoActivity   Action = "go_activity"
	actionGoNutrition  Action = "go_nutrition"
	actionGoSleep      Action = "go_sleep"
	actionGoWorkouts   Action = "go_workouts"
	actionPrevDay      Action = "prev_day"
	actionNextDay      Action = "next_day"
	actionToggleTheme  Action = "toggle_theme"
	actionToggleView   Action = "toggle_view"
	actionLeaderboard  Action = "leaderboard"
	actionUserMenu     Action = "user_menu"
	actionNavigate     Action = "navigate"
	actionSetGoal      Action = "set_goal"
	actionIncrement    Action = "increment"
	actionDecrement    Action = "decrement"
	actionSave         Action = "save"
	actionClose        Action = "close"
	actionSwitchBoard  Action = "switch_board"
	actionMinimize     Action = "minimize"
	actionSelect       Action = "select"
	actionNavigateUp   Action = "navigate_up"
	actionNavigateDown Action = "navigate_down"
)

// tabActions maps the direct tab shortcuts to tab positions.
var tabActions = []Action{actionGoOverview, actionGoActivity, actionGoNutrition, actionGoSleep, actionGoWorkouts}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionPrevDay, []string{"←/→", "left", "h"}, "day")
	reg(scopeGlobal, actionNextDay, []string{"right", "l"}, "")
	reg(scopeGlobal, actionNextTab, []string{"tab"}, "next tab")
	reg(scopeGlobal, actionPrevTab, []string{"shift+tab"}, "prev tab")
	reg(scopeGlobal, actionGoOverview, []string{"1"}, "overview")
	reg(scopeGlobal, actionGoActivity, []string{"2"}, "activity")
	reg(scopeGlobal, actionGoNutrition, []string{"3"}, "nutrition")
	reg(scopeGlobal, actionGoSleep, []string{"4"}, "sleep")
	reg(scopeGlobal, actionGoWorkouts, []string{"5"}, "workouts")
	reg(scopeGlobal, actionToggleTheme, []string{"t"}, "theme")
	reg(scopeGlobal, actionLeaderboard, []string{"L"}, "leaderboard")
	reg(scopeGlobal, actionUserMenu, []string{"u"}, "account")
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	// Overview cards.
	reg(scopeOverview, actionNavigateUp, []string{"k", "up"}, "")
	reg(scopeOverview, actionNavigateDown, []string{"j", "down"}, "")
	reg(scopeOverview, actionNavigate, []string{"j/k"}, "card")
	reg(scopeOverview, actionSetGoal, []string{"enter", "g"}, "set goal")
	reg(scopeOverview, actionToggleView, []string{"v"}, "grid/row")

	// The nutrition and sleep pages edit their own goal.
	reg(scopeNutrition, actionSetGoal, []string{"g"}, "water goal")
	reg(scopeSleep, actionSetGoal, []string{"g"}, "sleep goal")

	// Goal modal: +/- adjust, enter saves, esc discards.
	reg(scopeGoalModal, actionIncrement, []string{"+", "=", "up", "k", "right", "l"}, "increase")
	reg(scopeGoalModal, actionDecrement, []string{"-", "down", "j", "left", "h"}, "decrease")
	reg(scopeGoalModal, actionSave, []string{"enter"}, "set goal")
	reg(scopeGoalModal, actionClose, []string{"esc"}, "cancel")
	reg(scopeGoalModal, actionQuit, []string{"ctrl+c"}, "quit")

	// Leaderboard popup (expanded).
	reg(scopeLeaderboard, actionSwitchBoard, []string{"b"}, "friends/global")
	reg(scopeLeaderboard, actionMinimize, []string{"m"}, "minimize")
	reg(scopeLeaderboard, actionClose, []string{"esc", "x"}, "close")

	// User menu dropdown.
	reg(scopeUserMenu, actionNavigateUp, []string{"k", "up"}, "")
	reg(scopeUserMenu, actionNavigateDown, []string{"j", "down"}, "")
	reg(scopeUserMenu, actionNavigate, []string{"j/k"}, "navigate")
	reg(scopeUserMenu, actionSelect, []string{"enter"}, "select")
	reg(scopeUserMenu, actionClose, []string{"esc", "u"}, "close")
	reg(scopeUserMenu, actionQuit, []string{"ctrl+c"}, "quit")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// LookupExclusive is Lookup without the global fallback, for modal scopes.
func (r *KeyRegistry) LookupExclusive(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	return r.lookupInScope(normalizeKeyName(keyName), scope)
}

// HelpBindings returns the bindings of a scope that carry help text.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep uppercase runes distinct from their lowercase keys.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}

// ---------------------------------------------------------------------------
// keybindings.toml overrides
// ---------------------------------------------------------------------------

type keybindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keybindingsFile struct {
	Binding []keybindingConfig `toml:"binding"`
}

// LoadKeybindingsFile reads [[binding]] overrides from path. A missing file
// yields no overrides.
func LoadKeybindingsFile(path string) ([]keybindingConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	return parseKeybindings(data)
}

func parseKeybindings(data []byte) ([]keybindingConfig, error) {
	var f keybindingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keybindings.toml: %w", err)
	}
	return f.Binding, nil
}

// ApplyKeybindingConfig replaces the keys of existing bindings. Unknown scopes
// or actions, duplicate entries and key conflicts within a scope are errors.
func (r *KeyRegistry) ApplyKeybindingConfig(items []keybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// ExportKeybindingConfig lists every binding, sorted by scope then action.
func (r *KeyRegistry) ExportKeybindingConfig() []keybindingConfig {
	if r == nil {
		return nil
	}
	var out []keybindingConfig
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, keybindingConfig{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}

// WriteKeybindings writes every binding as a keybindings.toml document that
// LoadKeybindingsFile accepts.
func (r *KeyRegistry) WriteKeybindings(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(keybindingsFile{Binding: r.ExportKeybindingConfig()}); err != nil {
		return fmt.Errorf("encode keybindings: %w", err)
	}
	return nil
}
