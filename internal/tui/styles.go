package tui

import "github.com/charmbracelet/lipgloss"

// styles is rebuilt whenever the theme changes.
type styles struct {
	p palette

	title       lipgloss.Style
	navBar      lipgloss.Style
	brand       lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	tabSep      lipgloss.Style
	muted       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	card        lipgloss.Style
	focusedCard lipgloss.Style
	section     lipgloss.Style
	modal       lipgloss.Style
	popup       lipgloss.Style
	pill        lipgloss.Style
	footer      lipgloss.Style
	pageFooter  lipgloss.Style
	statusBar   lipgloss.Style
	statusErr   lipgloss.Style
	helpKey     lipgloss.Style
	helpDesc    lipgloss.Style
	disabled    lipgloss.Style
	cursor      lipgloss.Style
	up          lipgloss.Style
	down        lipgloss.Style
	self        lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		p:     p,
		title: lipgloss.NewStyle().Foreground(p.brand()).Bold(true),
		navBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Mantle).
			Padding(0, 2),
		brand: lipgloss.NewStyle().
			Foreground(p.brand()).
			Background(p.Mantle).
			Bold(true),
		activeTab: lipgloss.NewStyle().
			Foreground(p.accent()).
			Background(p.Surface0).
			Bold(true).
			Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.Overlay1).
			Background(p.Mantle).
			Padding(0, 1),
		tabSep: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Background(p.Mantle),
		muted: lipgloss.NewStyle().Foreground(p.Subtext0),
		label: lipgloss.NewStyle().Foreground(p.Subtext1),
		value: lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Padding(0, 1),
		focusedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.focus()).
			Padding(0, 1),
		section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent()).
			Padding(0, 1),
		popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.brand()).
			Padding(0, 1),
		pill: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.brand()).
			Bold(true).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Background(p.Mantle).
			Padding(0, 2),
		pageFooter: lipgloss.NewStyle().Foreground(p.Overlay1),
		statusBar: lipgloss.NewStyle().
			Foreground(p.Subtext1).
			Background(p.Surface0).
			Padding(0, 2),
		statusErr: lipgloss.NewStyle().
			Foreground(p.errorC()).
			Background(p.Surface0).
			Bold(true).
			Padding(0, 2),
		helpKey:  lipgloss.NewStyle().Foreground(p.accent()).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(p.Subtext0),
		disabled: lipgloss.NewStyle().Foreground(p.Surface2),
		cursor:   lipgloss.NewStyle().Foreground(p.accent()).Bold(true),
		up:       lipgloss.NewStyle().Foreground(p.success()),
		down:     lipgloss.NewStyle().Foreground(p.errorC()),
		self:     lipgloss.NewStyle().Foreground(p.brand()).Bold(true),
	}
}
