package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitnesstrack/internal/fitness"
	"github.com/jask/fitnesstrack/internal/session"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes: Latte for the light theme, Mocha for the dark one
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	Rosewater, Flamingo, Pink, Mauve lipgloss.Color
	Red, Maroon, Peach, Yellow       lipgloss.Color
	Green, Teal, Sky, Sapphire       lipgloss.Color
	Blue, Lavender                   lipgloss.Color
	Text, Subtext1, Subtext0         lipgloss.Color
	Overlay2, Overlay1, Overlay0     lipgloss.Color
	Surface2, Surface1, Surface0     lipgloss.Color
	Base, Mantle, Crust              lipgloss.Color
}

var latte = palette{
	Rosewater: "#dc8a78", Flamingo: "#dd7878", Pink: "#ea76cb", Mauve: "#8839ef",
	Red: "#d20f39", Maroon: "#e64553", Peach: "#fe640b", Yellow: "#df8e1d",
	Green: "#40a02b", Teal: "#179299", Sky: "#04a5e5", Sapphire: "#209fb5",
	Blue: "#1e66f5", Lavender: "#7287fd",
	Text: "#4c4f69", Subtext1: "#5c5f77", Subtext0: "#6c6f85",
	Overlay2: "#7c7f93", Overlay1: "#8c8fa1", Overlay0: "#9ca0b0",
	Surface2: "#acb0be", Surface1: "#bcc0cc", Surface0: "#ccd0da",
	Base: "#eff1f5", Mantle: "#e6e9ef", Crust: "#dce0e8",
}

var mocha = palette{
	Rosewater: "#f5e0dc", Flamingo: "#f2cdcd", Pink: "#f5c2e7", Mauve: "#cba6f7",
	Red: "#f38ba8", Maroon: "#eba0ac", Peach: "#fab387", Yellow: "#f9e2af",
	Green: "#a6e3a1", Teal: "#94e2d5", Sky: "#89dceb", Sapphire: "#74c7ec",
	Blue: "#89b4fa", Lavender: "#b4befe",
	Text: "#cdd6f4", Subtext1: "#bac2de", Subtext0: "#a6adc8",
	Overlay2: "#9399b2", Overlay1: "#7f849c", Overlay0: "#6c7086",
	Surface2: "#585b70", Surface1: "#45475a", Surface0: "#313244",
	Base: "#1e1e2e", Mantle: "#181825", Crust: "#11111b",
}

func paletteFor(t session.Theme) palette {
	if t == session.ThemeDark {
		return mocha
	}
	return latte
}

// colors returns every palette entry, in declaration order.
func (p palette) colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Rosewater, p.Flamingo, p.Pink, p.Mauve,
		p.Red, p.Maroon, p.Peach, p.Yellow,
		p.Green, p.Teal, p.Sky, p.Sapphire,
		p.Blue, p.Lavender,
		p.Text, p.Subtext1, p.Subtext0,
		p.Overlay2, p.Overlay1, p.Overlay0,
		p.Surface2, p.Surface1, p.Surface0,
		p.Base, p.Mantle, p.Crust,
	}
}

// Semantic aliases.
func (p palette) accent() lipgloss.Color  { return p.Blue }
func (p palette) brand() lipgloss.Color   { return p.Mauve }
func (p palette) focus() lipgloss.Color   { return p.Lavender }
func (p palette) success() lipgloss.Color { return p.Green }
func (p palette) errorC() lipgloss.Color  { return p.Red }

// metricColor is the accent used for a metric's ring, bars and values.
func (p palette) metricColor(m fitness.Metric) lipgloss.Color {
	switch m {
	case fitness.MetricSteps:
		return p.Blue
	case fitness.MetricCalories:
		return p.Peach
	case fitness.MetricSleep:
		return p.Mauve
	case fitness.MetricWater:
		return p.Sky
	}
	return p.Red
}
