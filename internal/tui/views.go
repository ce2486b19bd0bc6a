package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitnesstrack/internal/fitness"
	"github.com/jask/fitnesstrack/internal/session"
)

// chartHeight is the number of rows in the weekly bar charts.
const chartHeight = 6

// renderPage is the scrollable body for the active tab, ending in the page footer.
func (a *App) renderPage(width int) string {
	if width <= 0 {
		width = 80
	}
	inner := width - 2
	var sections []string
	switch a.tabs.Active() {
	case session.TabActivity:
		sections = a.activitySections(inner)
	case session.TabNutrition:
		sections = a.nutritionSections(inner)
	case session.TabSleep:
		sections = a.sleepSections(inner)
	case session.TabWorkouts:
		sections = a.workoutSections(inner)
	default:
		sections = a.overviewSections(inner)
	}
	sections = append(sections, a.renderPageFooter(inner))
	page := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().PaddingLeft(1).Render(page)
}

// renderBarChart draws vertical bars; heights are percentages and are cut at 100.
func (a *App) renderBarChart(bars []fitness.Bar, color lipgloss.Color, width int) string {
	if len(bars) == 0 {
		return ""
	}
	colWidth := max(width/len(bars), 3)
	on := lipgloss.NewStyle().Foreground(color)
	off := lipgloss.NewStyle().Foreground(a.styles.p.Surface0)
	block := strings.Repeat("█", max(colWidth-2, 1))

	var rows []string
	for r := chartHeight; r >= 1; r-- {
		threshold := float64(r-1) / chartHeight * 100
		var b strings.Builder
		for _, bar := range bars {
			cell := off.Render(block)
			if bar.Height > threshold {
				cell = on.Render(block)
			}
			b.WriteString(lipgloss.PlaceHorizontal(colWidth, lipgloss.Center, cell))
		}
		rows = append(rows, b.String())
	}
	var labels strings.Builder
	for _, bar := range bars {
		labels.WriteString(lipgloss.PlaceHorizontal(colWidth, lipgloss.Center, a.styles.muted.Render(bar.Day)))
	}
	rows = append(rows, labels.String())
	return strings.Join(rows, "\n")
}

func (a *App) renderRecords(records []fitness.Record, width int) string {
	s := a.styles
	var lines []string
	for _, r := range records {
		left := s.label.Render(r.Label)
		right := s.value.Render(r.Value) + s.muted.Render("  "+r.Date)
		gap := width - lipgloss.Width(left) - lipgloss.Width(right)
		lines = append(lines, left+strings.Repeat(" ", max(gap, 1))+right)
	}
	return strings.Join(lines, "\n")
}

func twoColumns(left, right string, width int) string {
	if width < 70 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// ---------------------------------------------------------------------------
// Overview
// ---------------------------------------------------------------------------

func (a *App) overviewSections(width int) []string {
	s := a.styles
	half := width / 2
	if width < 70 {
		half = width
	}

	var upcoming []string
	for _, w := range a.content.Upcoming {
		upcoming = append(upcoming,
			s.value.Render(w.Name)+"\n"+s.muted.Render(fmt.Sprintf("%s • %s • %s", w.Day, w.Time, w.Duration)))
	}

	goal := a.goals.Goals().Steps
	weekly := s.value.Render(fitness.FormatCount(fitness.TotalWeeklySteps(a.data))) + s.muted.Render(" steps this week") + "\n\n" +
		a.renderBarChart(fitness.StepBars(a.data, float64(goal)), s.p.metricColor(fitness.MetricSteps), half-4)

	return []string{
		a.renderOverviewCards(width),
		twoColumns(
			a.renderSection("Upcoming Workouts", strings.Join(upcoming, "\n\n"), half),
			a.renderSection("Activity Summary", weekly, half),
			width,
		),
		a.renderSection("Daily Goals", a.renderGoalProgress(width-4), width),
		a.renderSection("Personal Records", a.renderRecords(a.content.HighlightRecords, width-4), width),
	}
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

func (a *App) activitySections(width int) []string {
	s := a.styles
	half := width / 2
	if width < 70 {
		half = width
	}

	var recent []string
	for _, w := range a.content.Recent {
		recent = append(recent, s.value.Render(w.Name)+s.muted.Render("  "+w.Date+" · "+w.Intensity)+"\n"+s.label.Render(w.Stats))
	}

	var zones []string
	for _, z := range a.content.Zones {
		zones = append(zones,
			s.label.Render(padRight(z.Zone, 20))+
				a.renderBar(z.Percent, s.p.Red, half-40)+
				s.muted.Render(fmt.Sprintf(" %3d%%  %s", z.Percent, z.Time)))
	}

	steps := a.goals.Goals().Steps
	chart := s.value.Render(fitness.FormatCount(fitness.TotalWeeklySteps(a.data))) +
		s.muted.Render(fmt.Sprintf(" steps · goal %s/day", fitness.FormatCount(steps))) + "\n\n" +
		a.renderBarChart(fitness.StepBars(a.data, float64(steps)), s.p.metricColor(fitness.MetricSteps), width-4)

	return []string{
		a.renderSection("Weekly Steps", chart, width),
		twoColumns(
			a.renderSection("Running Records", a.renderRecords(a.content.RunningRecords, half-4), half),
			a.renderSection("Strength Records", a.renderRecords(a.content.StrengthRecords, half-4), half),
			width,
		),
		a.renderSection("Workout History", strings.Join(recent, "\n\n"), width),
		a.renderSection("Heart Rate Zones", strings.Join(zones, "\n"), width),
	}
}

// ---------------------------------------------------------------------------
// Nutrition
// ---------------------------------------------------------------------------

func (a *App) nutritionSections(width int) []string {
	s := a.styles
	half := width / 2
	if width < 70 {
		half = width
	}
	snap := a.day.Snapshot(a.data)
	waterGoal := a.goals.Goals().WaterLiters
	waterColor := s.p.metricColor(fitness.MetricWater)

	consumed := a.content.CaloriesConsumed
	calGoal := a.goals.Goals().Calories
	calories := s.value.Render(fitness.FormatCount(consumed)) + s.muted.Render(fmt.Sprintf(" / %s kcal", fitness.FormatCount(calGoal))) + "\n" +
		a.renderBar(fitness.BarWidth(float64(consumed), float64(calGoal)), s.p.metricColor(fitness.MetricCalories), half-6)

	var macros []string
	for _, m := range a.content.Macros {
		macros = append(macros, s.label.Render(padRight(m.Name, 9))+a.renderBar(m.Percent, s.p.Green, half-26)+
			s.muted.Render(fmt.Sprintf(" %3d%%  %dg", m.Percent, m.Grams)))
	}

	glasses := fitness.WaterGlasses(snap.WaterLiters, waterGoal, a.content.WaterGlassesDaily)
	glassRow := lipgloss.NewStyle().Foreground(waterColor).Render(strings.Repeat("▮ ", glasses)) +
		lipgloss.NewStyle().Foreground(s.p.Surface1).Render(strings.Repeat("▯ ", a.content.WaterGlassesDaily-glasses))
	water := s.value.Render(fitness.FormatDecimal(snap.WaterLiters)+" L") +
		s.muted.Render(fmt.Sprintf("  Goal: %s L  ", fitness.FormatDecimal(waterGoal))) +
		lipgloss.NewStyle().Foreground(waterColor).Bold(true).Render(fmt.Sprintf("%d%%", fitness.PercentComplete(snap.WaterLiters, waterGoal))) + "\n" +
		a.renderRing(snap.WaterLiters/waterGoal*100, waterColor) + "\n" + glassRow + "\n" +
		s.muted.Render("g set water goal")

	var meals []string
	for _, m := range a.content.Meals {
		head := s.value.Render(m.Meal) + s.muted.Render("  "+m.Time)
		kcal := s.label.Render(fmt.Sprintf("%d kcal", m.Calories))
		gap := width - 4 - lipgloss.Width(head) - lipgloss.Width(kcal)
		meals = append(meals, head+strings.Repeat(" ", max(gap, 1))+kcal+"\n"+s.muted.Render(m.Items))
	}

	var foods []string
	for _, f := range a.content.RecommendedFoods {
		foods = append(foods, s.value.Render(f.Name)+"\n"+s.muted.Render(f.Items))
	}

	return []string{
		twoColumns(
			a.renderSection("Calories Consumed", calories+"\n\n"+strings.Join(macros, "\n"), half),
			a.renderSection("Water Intake", water, half),
			width,
		),
		a.renderSection("Meals", strings.Join(meals, "\n\n"), width),
		a.renderSection("Recommended Foods", strings.Join(foods, "\n\n"), width),
	}
}

// ---------------------------------------------------------------------------
// Sleep
// ---------------------------------------------------------------------------

func (a *App) sleepSections(width int) []string {
	s := a.styles
	snap := a.day.Snapshot(a.data)
	goal := a.goals.Goals().SleepHours
	color := s.p.metricColor(fitness.MetricSleep)

	tonight := s.value.Render(fitness.FormatDecimal(snap.SleepHours)+" hrs") +
		s.muted.Render(fmt.Sprintf("  Goal: %s hours  ", fitness.FormatDecimal(goal))) +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d%%", fitness.PercentComplete(snap.SleepHours, goal))) + "\n" +
		a.renderRing(snap.SleepHours/goal*100, color) + "\n" +
		s.muted.Render("g set sleep goal")

	analytics := []fitness.Record{
		{Label: "Average", Value: fitness.FormatDecimal(fitness.SleepAverage(a.data)) + " hrs", Date: "this week"},
		{Label: "Best Night", Value: fitness.FormatDecimal(fitness.BestSleep(a.data)) + " hrs", Date: "this week"},
		{Label: "Goal", Value: fitness.FormatDecimal(goal) + " hrs", Date: "per night"},
	}

	return []string{
		a.renderSection(a.day.Label()+"'s Sleep", tonight, width),
		a.renderSection("Weekly Sleep", a.renderBarChart(fitness.SleepBars(a.data), color, width-4), width),
		a.renderSection("Sleep Analytics", a.renderRecords(analytics, width-4), width),
	}
}

// ---------------------------------------------------------------------------
// Workouts
// ---------------------------------------------------------------------------

func (a *App) workoutSections(width int) []string {
	s := a.styles

	var programs []string
	for _, p := range a.content.Programs {
		programs = append(programs,
			s.value.Render(p.Name)+s.muted.Render(fmt.Sprintf("  %s – %s", p.StartDate, p.EndDate))+"\n"+
				a.renderBar(p.Progress, s.p.accent(), width-14)+s.label.Render(fmt.Sprintf(" %3d%%", p.Progress))+"\n"+
				s.muted.Render("Next: "+p.NextWorkout))
	}

	var weekly []string
	for _, g := range a.content.WeeklyGoals {
		pct := int(math.Round(float64(g.Current) / float64(g.Goal) * 100))
		amount := fmt.Sprintf(" %s/%s", fitness.FormatCount(g.Current), fitness.FormatCount(g.Goal))
		if g.Unit != "" {
			amount += " " + g.Unit
		}
		weekly = append(weekly, s.label.Render(padRight(g.Name, 16))+a.renderBar(pct, s.p.Green, width-40)+s.muted.Render(amount))
	}

	var upcoming []string
	for _, w := range a.content.Upcoming {
		upcoming = append(upcoming, s.value.Render(padRight(w.Day, 11))+s.label.Render(w.Name)+s.muted.Render(fmt.Sprintf("  %s · %s", w.Time, w.Duration)))
	}

	return []string{
		a.renderSection("Workout Programs", strings.Join(programs, "\n\n"), width),
		a.renderSection("Weekly Goals", strings.Join(weekly, "\n"), width),
		a.renderSection("Scheduled", strings.Join(upcoming, "\n"), width),
		a.renderSection("Personal Bests", a.renderRecords(a.content.HighlightRecords, width-4), width),
	}
}
