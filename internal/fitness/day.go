package fitness

// Direction is a day-navigation step. Back moves towards older days.
type Direction int

const (
	Forward Direction = iota
	Back
)

var dayLabels = [...]string{
	"Today",
	"Yesterday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}

// MaxDayIndex is the oldest selectable day.
const MaxDayIndex = len(dayLabels) - 1

// DayLabel returns the label for a day index, clamping out-of-range input.
func DayLabel(index int) string {
	return dayLabels[clampDay(index)]
}

// DaySnapshot is the set of metric values attributed to one day.
type DaySnapshot struct {
	Steps       int
	Calories    int
	SleepHours  float64
	WaterLiters float64
}

// DaySelector tracks the selected day. The zero value selects Today.
type DaySelector struct {
	index int
}

func (s DaySelector) Index() int    { return s.index }
func (s DaySelector) Label() string { return DayLabel(s.index) }

// CanGoForward reports whether a newer day exists; it is false on Today.
func (s DaySelector) CanGoForward() bool { return s.index > 0 }

// CanGoBack reports whether an older day exists.
func (s DaySelector) CanGoBack() bool { return s.index < MaxDayIndex }

// Advance moves one day in the given direction, clamping at both ends, and
// returns the new index.
func (s *DaySelector) Advance(d Direction) int {
	switch d {
	case Back:
		s.index = min(s.index+1, MaxDayIndex)
	case Forward:
		s.index = max(s.index-1, 0)
	}
	return s.index
}

// Snapshot returns the values shown for the selected day.
func (s DaySelector) Snapshot(d Data) DaySnapshot {
	return Snapshot(s.index, d)
}

// Snapshot maps a day index to its values. Index 0 reads the current-value
// fields, index 1 reads history[0] and index k >= 2 reads history[k-2].
// Indices 1 and 2 therefore both resolve to history[0]; that mapping is kept
// as-is for output compatibility with the web dashboard.
func Snapshot(index int, d Data) DaySnapshot {
	switch index = clampDay(index); index {
	case 0:
		return DaySnapshot{
			Steps:       d.Steps.Current,
			Calories:    d.Calories.Burned,
			SleepHours:  d.Sleep.Hours,
			WaterLiters: d.Water.Current,
		}
	case 1:
		return d.historyAt(0)
	default:
		return d.historyAt(index - 2)
	}
}

func (d Data) historyAt(i int) DaySnapshot {
	return DaySnapshot{
		Steps:       d.Steps.History[i].Count,
		Calories:    d.Calories.History[i].Count,
		SleepHours:  d.Sleep.History[i].Hours,
		WaterLiters: d.Water.History[i].Liters,
	}
}

// Value returns the snapshot value for a goal metric.
func (s DaySnapshot) Value(m Metric) float64 {
	switch m {
	case MetricSteps:
		return float64(s.Steps)
	case MetricCalories:
		return float64(s.Calories)
	case MetricSleep:
		return s.SleepHours
	case MetricWater:
		return s.WaterLiters
	default:
		return 0
	}
}

func clampDay(index int) int {
	return min(max(index, 0), MaxDayIndex)
}
