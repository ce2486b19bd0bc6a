package session

import (
	"context"
	"fmt"
	"sync"
)

// ThemeKey is the preference key holding the theme.
const ThemeKey = "fitness-theme"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const DefaultTheme = ThemeLight

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// ThemeContext tracks the colour theme.
type ThemeContext struct {
	store Store

	mu    sync.RWMutex
	theme Theme
}

func NewThemeContext(store Store) *ThemeContext {
	return &ThemeContext{store: store, theme: DefaultTheme}
}

// Load reads the stored theme, keeping the default for missing or unknown values.
func (c *ThemeContext) Load(ctx context.Context) error {
	v, ok, err := c.store.Get(ctx, ThemeKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", ThemeKey, err)
	}
	if !ok {
		return nil
	}
	if t, valid := ParseTheme(v); valid {
		c.mu.Lock()
		c.theme = t
		c.mu.Unlock()
	}
	return nil
}

func (c *ThemeContext) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

func (c *ThemeContext) Dark() bool { return c.Theme() == ThemeDark }

// Toggle flips between light and dark in memory and returns the new theme.
func (c *ThemeContext) Toggle() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.theme == ThemeDark {
		c.theme = ThemeLight
	} else {
		c.theme = ThemeDark
	}
	return c.theme
}

// Save writes t to the store.
func (c *ThemeContext) Save(ctx context.Context, t Theme) error {
	if err := c.store.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save %s: %w", ThemeKey, err)
	}
	return nil
}
