package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	setGoal := r.Lookup("enter", scopeOverview)
	if setGoal == nil || setGoal.Action != actionSetGoal {
		t.Fatalf("enter in overview = %v, want set_goal", setGoal)
	}
	if got := r.Lookup("v", scopeSleep); got != nil {
		t.Fatalf("did not expect grid toggle on the sleep page, got %q", got.Action)
	}

	quit := r.Lookup("q", scopeOverview)
	if quit == nil || quit.Action != actionQuit {
		t.Fatal("expected quit to fall back to the global scope")
	}
	if got := r.Lookup("escape", scopeLeaderboard); got == nil || got.Action != actionClose {
		t.Fatalf("escape should normalize to esc and close the leaderboard")
	}
}

func TestKeyRegistryExclusiveSkipsGlobal(t *testing.T) {
	r := NewKeyRegistry()
	if got := r.LookupExclusive("q", scopeGoalModal); got != nil {
		t.Fatalf("goal modal should not see global q, got %q", got.Action)
	}
	if got := r.LookupExclusive("ctrl+c", scopeGoalModal); got == nil || got.Action != actionQuit {
		t.Fatal("ctrl+c should still quit from the goal modal")
	}
	if got := r.LookupExclusive("+", scopeGoalModal); got == nil || got.Action != actionIncrement {
		t.Fatal("+ should increment in the goal modal")
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
	r.Register(Binding{Action: actionSave, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionClose, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionClose, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionSave {
		t.Fatalf("scope_a bindings = %+v, want only save", a)
	}
	if b := r.BindingsForScope("scope_b"); len(b) != 1 || b[0].Action != actionClose {
		t.Fatalf("scope_b bindings = %+v, want only close", b)
	}
}

func TestHelpBindingsSkipHiddenEntries(t *testing.T) {
	r := NewKeyRegistry()
	for _, b := range r.HelpBindings(scopeOverview) {
		if b.Help().Desc == "" {
			t.Fatalf("help binding %q has no description", b.Help().Key)
		}
		if b.Help().Key == "k" || b.Help().Key == "j" {
			t.Fatalf("navigation keys should be summarized as j/k")
		}
	}
}

func TestApplyKeybindingOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.toml")
	data := `
[[binding]]
scope = "global"
action = "toggle_theme"
keys = ["T", "ctrl+t"]

[[binding]]
scope = "leaderboard"
action = "switch_board"
keys = ["tab"]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	items, err := LoadKeybindingsFile(path)
	if err != nil {
		t.Fatalf("LoadKeybindingsFile: %v", err)
	}
	r := NewKeyRegistry()
	if err := r.ApplyKeybindingConfig(items); err != nil {
		t.Fatalf("ApplyKeybindingConfig: %v", err)
	}
	if got := r.Lookup("T", scopeOverview); got == nil || got.Action != actionToggleTheme {
		t.Fatal("T should toggle the theme after override")
	}
	if got := r.Lookup("t", scopeOverview); got != nil {
		t.Fatalf("old key t should be unbound, got %q", got.Action)
	}
	if got := r.Lookup("tab", scopeLeaderboard); got == nil || got.Action != actionSwitchBoard {
		t.Fatal("tab should switch boards inside the leaderboard")
	}
	if got := r.Lookup("tab", scopeOverview); got == nil || got.Action != actionNextTab {
		t.Fatal("tab should still change tabs outside the leaderboard")
	}
}

func TestApplyKeybindingErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []keybindingConfig
		want  string
	}{
		{"unknown scope", []keybindingConfig{{Scope: "nope", Action: "quit", Keys: []string{"x"}}}, "unknown scope"},
		{"unknown action", []keybindingConfig{{Scope: "global", Action: "fly", Keys: []string{"x"}}}, "unknown action"},
		{"no keys", []keybindingConfig{{Scope: "global", Action: "quit"}}, "keys are required"},
		{"conflict", []keybindingConfig{{Scope: "global", Action: "toggle_theme", Keys: []string{"q"}}}, "conflict"},
		{"duplicate", []keybindingConfig{
			{Scope: "global", Action: "quit", Keys: []string{"x"}},
			{Scope: "global", Action: "quit", Keys: []string{"y"}},
		}, "duplicated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewKeyRegistry().ApplyKeybindingConfig(tt.items)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadKeybindingsMissingFile(t *testing.T) {
	items, err := LoadKeybindingsFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil || items != nil {
		t.Fatalf("missing file = %v, %v; want no overrides", items, err)
	}
	if _, err := parseKeybindings([]byte("[[binding]\nscope=")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestExportKeybindingConfigIsSorted(t *testing.T) {
	items := NewKeyRegistry().ExportKeybindingConfig()
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		if a.Scope > b.Scope || (a.Scope == b.Scope && a.Action > b.Action) {
			t.Fatalf("export not sorted at %d: %+v before %+v", i, a, b)
		}
	}
}

func TestWriteKeybindingsRoundTrips(t *testing.T) {
	r := NewKeyRegistry()
	if err := r.ApplyKeybindingConfig([]keybindingConfig{{Scope: "global", Action: "toggle_theme", Keys: []string{"T"}}}); err != nil {
		t.Fatalf("ApplyKeybindingConfig: %v", err)
	}

	var buf strings.Builder
	if err := r.WriteKeybindings(&buf); err != nil {
		t.Fatalf("WriteKeybindings: %v", err)
	}
	if !strings.Contains(buf.String(), "[[binding]]") {
		t.Fatalf("output has no [[binding]] tables:\n%s", buf.String())
	}

	items, err := parseKeybindings([]byte(buf.String()))
	if err != nil {
		t.Fatalf("parse written keybindings: %v", err)
	}
	if len(items) != len(r.ExportKeybindingConfig()) {
		t.Fatalf("round trip kept %d bindings, want %d", len(items), len(r.ExportKeybindingConfig()))
	}

	fresh := NewKeyRegistry()
	if err := fresh.ApplyKeybindingConfig(items); err != nil {
		t.Fatalf("written file should apply cleanly: %v", err)
	}
	if got := fresh.Lookup("T", scopeOverview); got == nil || got.Action != actionToggleTheme {
		t.Fatal("T should toggle the theme after the round trip")
	}
}
