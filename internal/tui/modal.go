package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitnesstrack/internal/fitness"
)

const goalModalWidth = 44

// goalModalBox frames the goal editor, narrowing it on small terminals.
func (a *App) goalModalBox() string {
	content := a.renderGoalModal()
	if a.width > 0 {
		content = lipgloss.NewStyle().Width(min(goalModalWidth, a.width-10)).Render(content)
	}
	return a.styles.modal.Render(content)
}

// renderGoalModal is the goal editor: a stepper over a preview of the past
// week against the candidate goal.
func (a *App) renderGoalModal() string {
	s := a.styles
	g := a.goalEdit
	color := s.p.metricColor(g.settings.Metric)
	inner := goalModalWidth - 4

	center := func(v string) string { return lipgloss.PlaceHorizontal(inner, lipgloss.Center, v) }

	minus := s.cursor.Render("[ − ]")
	plus := s.cursor.Render("[ + ]")
	if g.stepper.Value <= g.settings.Min {
		minus = s.disabled.Render("[ − ]")
	}
	if g.stepper.Value >= g.settings.Max {
		plus = s.disabled.Render("[ + ]")
	}
	value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fitness.FormatGoal(g.settings.Metric, g.stepper.Value))

	bars := fitness.GoalBars(a.data, g.settings.Metric, g.stepper.Value)

	lines := []string{
		center(s.title.Render(g.settings.Title)),
		center(s.muted.Render(g.settings.Subtitle)),
		"",
		center(minus + "   " + value + "   " + plus),
		center(s.label.Render(g.settings.Unit)),
		"",
		a.renderBarChart(bars, color, inner),
		"",
		center(s.helpKey.Render("enter") + " " + s.helpDesc.Render("Set Goal") + "   " +
			s.helpKey.Render("esc") + " " + s.helpDesc.Render("Cancel")),
	}
	return strings.Join(lines, "\n")
}

// renderUserMenu is the account dropdown under the navbar name.
func (a *App) renderUserMenu() string {
	s := a.styles
	lines := []string{
		s.value.Render(userName),
		s.muted.Render(userEmail),
		lipgloss.NewStyle().Foreground(s.p.Surface2).Render(strings.Repeat("─", 22)),
	}
	for i, item := range userMenuItems {
		if i == a.menuCursor {
			lines = append(lines, s.cursor.Render("› "+item))
		} else {
			lines = append(lines, s.label.Render("  "+item))
		}
	}
	return s.popup.Render(strings.Join(lines, "\n"))
}
