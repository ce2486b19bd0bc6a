package fitness

import "math"

// sleepChartCeiling is the number of hours that fills a sleep bar.
const sleepChartCeiling = 12

// Bar is one column of a weekly chart. Height is in percent and may exceed 100.
type Bar struct {
	Day    string
	Height float64
}

// TotalWeeklySteps sums the steps history.
func TotalWeeklySteps(d Data) int {
	total := 0
	for _, day := range d.Steps.History {
		total += day.Count
	}
	return total
}

// StepBars scales each day's steps against goal.
func StepBars(d Data, goal float64) []Bar {
	bars := make([]Bar, 0, len(d.Steps.History))
	for _, day := range d.Steps.History {
		h := 0.0
		if goal > 0 {
			h = float64(day.Count) / goal * 100
		}
		bars = append(bars, Bar{Day: day.Day, Height: h})
	}
	return bars
}

// SleepBars scales each night against a fixed 12 hour ceiling.
func SleepBars(d Data) []Bar {
	bars := make([]Bar, 0, len(d.Sleep.History))
	for _, day := range d.Sleep.History {
		bars = append(bars, Bar{Day: day.Day, Height: day.Hours / sleepChartCeiling * 100})
	}
	return bars
}

// SleepAverage is the mean of the sleep history rounded to one decimal.
func SleepAverage(d Data) float64 {
	if len(d.Sleep.History) == 0 {
		return 0
	}
	sum := 0.0
	for _, day := range d.Sleep.History {
		sum += day.Hours
	}
	return math.Round(sum/float64(len(d.Sleep.History))*10) / 10
}

// BestSleep is the longest night in the history.
func BestSleep(d Data) float64 {
	best := 0.0
	for _, day := range d.Sleep.History {
		best = math.Max(best, day.Hours)
	}
	return best
}

// WaterGlasses is how many of total glasses are filled for the day's intake,
// rounding partial glasses up. It never exceeds total.
func WaterGlasses(current, goal float64, total int) int {
	if goal <= 0 || current <= 0 {
		return 0
	}
	n := int(math.Ceil(current / goal * float64(total)))
	return min(n, total)
}

// GoalBars scales a metric's weekly history against a candidate goal, so the
// goal editor can preview how the past week would have fared.
func GoalBars(d Data, m Metric, goal float64) []Bar {
	bars := make([]Bar, 0, HistoryLen)
	for i := 0; i < len(d.Steps.History); i++ {
		v := d.historyAt(i).Value(m)
		h := 0.0
		if goal > 0 {
			h = v / goal * 100
		}
		bars = append(bars, Bar{Day: d.Steps.History[i].Day, Height: h})
	}
	return bars
}
