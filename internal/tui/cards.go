package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitnesstrack/internal/fitness"
)

// overviewRing matches the 70px ring with a 3px stroke on the overview cards.
var overviewRing = fitness.Ring{Size: 70, StrokeWidth: 3}

// ringGlyphs fill a circle in quarters.
var ringGlyphs = []string{"○", "◔", "◑", "◕", "●"}

// renderRing draws a ring value as a glyph and a segmented arc.
func (a *App) renderRing(value float64, color lipgloss.Color) string {
	frac := overviewRing.FilledFraction(value)
	glyph := ringGlyphs[int(math.Round(frac*float64(len(ringGlyphs)-1)))]
	const segments = 8
	filled := int(math.Round(frac * segments))
	on := lipgloss.NewStyle().Foreground(color)
	off := lipgloss.NewStyle().Foreground(a.styles.p.Surface1)
	return on.Render(glyph) + " " + on.Render(strings.Repeat("◼", filled)) + off.Render(strings.Repeat("◻", segments-filled))
}

// renderBar draws a horizontal progress bar for a percentage, clamped to 100.
func (a *App) renderBar(percent int, color lipgloss.Color, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 4)),
	)
	bar.EmptyColor = string(a.styles.p.Surface1)
	clamped := math.Min(math.Max(float64(percent), 0), 100)
	return bar.ViewAs(clamped / 100)
}

type cardSpec struct {
	metric  fitness.Metric
	title   string
	value   string
	detail  string
	ring    float64
	percent string
}

func (a *App) overviewCard(metric fitness.Metric, snap fitness.DaySnapshot) cardSpec {
	goals := a.goals.Goals()
	switch metric {
	case fitness.MetricSteps:
		pct := fitness.PercentComplete(float64(snap.Steps), float64(goals.Steps))
		return cardSpec{
			metric:  metric,
			title:   "Steps",
			value:   fitness.FormatCount(snap.Steps),
			detail:  fmt.Sprintf("Goal: %s steps", fitness.FormatCount(goals.Steps)),
			ring:    float64(snap.Steps) / float64(goals.Steps) * 100,
			percent: fmt.Sprintf("%d%%", pct),
		}
	case fitness.MetricCalories:
		pct := fitness.PercentComplete(float64(snap.Calories), float64(goals.Calories))
		return cardSpec{
			metric:  metric,
			title:   "Calories",
			value:   fitness.FormatCount(snap.Calories),
			detail:  fmt.Sprintf("Goal: %s kcal", fitness.FormatCount(goals.Calories)),
			ring:    float64(snap.Calories) / float64(goals.Calories) * 100,
			percent: fmt.Sprintf("%d%%", pct),
		}
	case fitness.MetricSleep:
		pct := fitness.PercentComplete(snap.SleepHours, goals.SleepHours)
		return cardSpec{
			metric:  metric,
			title:   "Sleep",
			value:   fitness.FormatDecimal(snap.SleepHours) + " hrs",
			detail:  fmt.Sprintf("Goal: %s hours", fitness.FormatDecimal(goals.SleepHours)),
			ring:    snap.SleepHours / goals.SleepHours * 100,
			percent: fmt.Sprintf("%d%%", pct),
		}
	}
	h := a.data.HeartRate
	return cardSpec{
		metric:  metricHeart,
		title:   "Heart Rate",
		value:   fmt.Sprintf("%d bpm", h.Current),
		detail:  fmt.Sprintf("Min: %d bpm  Max: %d bpm", h.Min, h.Max),
		ring:    fitness.HeartRateValue(h),
		percent: "♥",
	}
}

func (a *App) renderCard(c cardSpec, width int, focused bool) string {
	s := a.styles
	style := s.card
	if focused {
		style = s.focusedCard
	}
	inner := width - style.GetHorizontalFrameSize()
	color := s.p.metricColor(c.metric)

	title := s.label.Render(c.title)
	pct := lipgloss.NewStyle().Foreground(color).Bold(true).Render(c.percent)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(pct)
	head := title + strings.Repeat(" ", max(gap, 1)) + pct

	lines := []string{
		head,
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(c.value),
		truncate(s.muted.Render(c.detail), inner),
		a.renderRing(c.ring, color),
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// overviewColumns is 2 in grid view and 4 in row view.
func (a *App) overviewColumns() int {
	if a.gridView {
		return 2
	}
	return 4
}

func (a *App) renderOverviewCards(width int) string {
	snap := a.day.Snapshot(a.data)
	cols := a.overviewColumns()
	cardWidth := width / cols
	if cardWidth < 22 {
		cols = max(width/22, 1)
		cardWidth = width / cols
	}

	var rows []string
	var row []string
	for i, metric := range overviewCards {
		row = append(row, a.renderCard(a.overviewCard(metric, snap), cardWidth, i == a.cardCursor))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderGoalProgress lists each goal metric with a clamped progress bar.
func (a *App) renderGoalProgress(width int) string {
	s := a.styles
	snap := a.day.Snapshot(a.data)
	labelWidth := 10
	pctWidth := 6
	barWidth := width - labelWidth - pctWidth - 2
	var lines []string
	for _, m := range fitness.Metrics() {
		pct := a.goals.Percent(m, snap)
		label := metricTitle(m)
		lines = append(lines,
			s.label.Render(padRight(label, labelWidth))+
				a.renderBar(fitness.BarWidth(snap.Value(m), a.goals.Goal(m)), s.p.metricColor(m), barWidth)+
				" "+s.value.Render(fmt.Sprintf("%*d%%", pctWidth-1, pct)))
	}
	return strings.Join(lines, "\n")
}

func metricTitle(m fitness.Metric) string {
	switch m {
	case fitness.MetricSteps:
		return "Steps"
	case fitness.MetricCalories:
		return "Calories"
	case fitness.MetricSleep:
		return "Sleep"
	case fitness.MetricWater:
		return "Water"
	}
	return "Heart Rate"
}
