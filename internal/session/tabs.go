package session

import (
	"context"
	"fmt"
	"sync"
)

// TabKey is the preference key holding the active tab.
const TabKey = "activeTab"

type Tab string

const (
	TabOverview  Tab = "overview"
	TabActivity  Tab = "activity"
	TabNutrition Tab = "nutrition"
	TabSleep     Tab = "sleep"
	TabWorkouts  Tab = "workouts"
)

// DefaultTab is used when nothing valid is stored.
const DefaultTab = TabOverview

var tabOrder = []Tab{TabOverview, TabActivity, TabNutrition, TabSleep, TabWorkouts}

var tabTitles = map[Tab]string{
	TabOverview:  "Overview",
	TabActivity:  "Activity",
	TabNutrition: "Nutrition",
	TabSleep:     "Sleep",
	TabWorkouts:  "Workouts",
}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

// ParseTab accepts only the known tab identifiers.
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	if _, ok := tabTitles[t]; ok {
		return t, true
	}
	return "", false
}

func (t Tab) Title() string { return tabTitles[t] }

// Index is the tab's position in display order, or -1.
func (t Tab) Index() int {
	for i, v := range tabOrder {
		if v == t {
			return i
		}
	}
	return -1
}

// TabChanged is dispatched to listeners after the active tab changes.
type TabChanged struct {
	From Tab
	To   Tab
}

// Listener receives tab changes. It must not block; there is no acknowledgement.
type Listener func(ctx context.Context, ev TabChanged)

// TabContext tracks the active tab.
type TabContext struct {
	store Store
	// writeMu orders store writes; each write stores the tab active at the
	// time it runs, so the last write always holds the current tab.
	writeMu sync.Mutex

	mu        sync.RWMutex
	active    Tab
	listeners []Listener
}

func NewTabContext(store Store) *TabContext {
	return &TabContext{store: store, active: DefaultTab}
}

// NewTabContextWithDefault starts on def instead of the overview when nothing
// valid is stored. An unknown def is ignored.
func NewTabContextWithDefault(store Store, def Tab) *TabContext {
	c := NewTabContext(store)
	if _, ok := tabTitles[def]; ok {
		c.active = def
	}
	return c
}

// Load reads the stored tab. A missing or unknown value leaves the default in
// place; a read error is returned but the context stays usable.
func (c *TabContext) Load(ctx context.Context) error {
	v, ok, err := c.store.Get(ctx, TabKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", TabKey, err)
	}
	if !ok {
		return nil
	}
	if t, valid := ParseTab(v); valid {
		c.mu.Lock()
		c.active = t
		c.mu.Unlock()
	}
	return nil
}

func (c *TabContext) Active() Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Subscribe registers a listener for tab changes.
func (c *TabContext) Subscribe(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// Select switches the active tab in memory. Unknown tabs are ignored.
func (c *TabContext) Select(t Tab) (TabChanged, bool) {
	if _, ok := tabTitles[t]; !ok {
		return TabChanged{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ev := TabChanged{From: c.active, To: t}
	c.active = t
	return ev, true
}

// Persist writes the currently active tab and notifies listeners of ev.
// Concurrent calls are serialised, and a late write never stores a tab that
// was already left. Listeners run even when the write fails.
func (c *TabContext) Persist(ctx context.Context, ev TabChanged) error {
	c.writeMu.Lock()
	err := c.store.Set(ctx, TabKey, string(c.Active()))
	c.writeMu.Unlock()
	c.mu.RLock()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.RUnlock()
	for _, l := range listeners {
		l(ctx, ev)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", TabKey, err)
	}
	return nil
}

// SetActive selects and persists in one step.
func (c *TabContext) SetActive(ctx context.Context, t Tab) error {
	ev, ok := c.Select(t)
	if !ok {
		return fmt.Errorf("unknown tab %q", t)
	}
	return c.Persist(ctx, ev)
}

// Cycle moves delta positions through the tab order, wrapping around.
func (c *TabContext) Cycle(delta int) (TabChanged, bool) {
	i := c.Active().Index()
	n := len(tabOrder)
	next := ((i+delta)%n + n) % n
	return c.Select(tabOrder[next])
}
