package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitnesstrack/internal/fitness"
)

const leaderboardWidth = 36

func (a *App) trendGlyph(t fitness.Trend) string {
	switch t {
	case fitness.TrendUp:
		return a.styles.up.Render("↑")
	case fitness.TrendDown:
		return a.styles.down.Render("↓")
	}
	return a.styles.muted.Render("–")
}

// medal marks the top three ranks.
func (a *App) medal(rank int) string {
	p := a.styles.p
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(p.Yellow).Render(" ✦")
	case 2:
		return lipgloss.NewStyle().Foreground(p.Overlay1).Render(" ✦")
	case 3:
		return lipgloss.NewStyle().Foreground(p.Peach).Render(" ✦")
	}
	return ""
}

func (a *App) renderLeaderboard() string {
	s := a.styles
	inner := leaderboardWidth - s.popup.GetHorizontalFrameSize()

	title := s.title.Render("🏆 Leaderboard")
	controls := s.muted.Render("m ▴  x ✕")
	gap := inner - lipgloss.Width(title) - lipgloss.Width(controls)
	header := title + strings.Repeat(" ", max(gap, 1)) + controls

	friends, global := s.inactiveTab.UnsetBackground().Render("Friends"), s.inactiveTab.UnsetBackground().Render("Global")
	if a.board.Scope() == fitness.ScopeGlobal {
		global = s.activeTab.UnsetBackground().Underline(true).Render("Global")
	} else {
		friends = s.activeTab.UnsetBackground().Underline(true).Render("Friends")
	}
	tabs := friends + "  " + global

	lines := []string{header, tabs, ""}
	for _, e := range a.board.Entries() {
		name := e.Name + a.medal(e.Rank)
		left := fmt.Sprintf("%4d  %s  ", e.Rank, e.Avatar)
		points := fmt.Sprintf("%s pts ", fitness.FormatCount(e.Points))
		row := left + padRight(name, inner-lipgloss.Width(left)-lipgloss.Width(points)-1) + points + a.trendGlyph(e.Change)
		if e.IsSelf() {
			row = s.self.Render(left+e.Name) + padRight("", inner-lipgloss.Width(left+e.Name)-lipgloss.Width(points)-1) + points + a.trendGlyph(e.Change)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", s.muted.Render("👥 Invite Friends   b switch board"))
	return s.popup.Width(leaderboardWidth - s.popup.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// renderLeaderboardPill is the minimized panel: a trophy and the row count.
func (a *App) renderLeaderboardPill() string {
	return a.styles.pill.Render(fmt.Sprintf("🏆 %d", a.board.Badge()))
}
