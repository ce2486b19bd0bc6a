package fitness

import (
	"math"
	"strconv"
	"strings"
)

// Metric identifies one of the goal-bearing metrics.
type Metric string

const (
	MetricSteps    Metric = "steps"
	MetricCalories Metric = "calories"
	MetricSleep    Metric = "sleep"
	MetricWater    Metric = "water"
)

// Metrics returns the goal metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricSteps, MetricCalories, MetricSleep, MetricWater}
}

// GoalSet holds the user's daily targets.
type GoalSet struct {
	Steps       int
	Calories    int
	SleepHours  float64
	WaterLiters float64
}

// DefaultGoals returns the goals embedded in the metric data.
func DefaultGoals(d Data) GoalSet {
	return GoalSet{
		Steps:       d.Steps.Goal,
		Calories:    d.Calories.Goal,
		SleepHours:  d.Sleep.Goal,
		WaterLiters: d.Water.Goal,
	}
}

// Value returns the goal for m.
func (g GoalSet) Value(m Metric) float64 {
	switch m {
	case MetricSteps:
		return float64(g.Steps)
	case MetricCalories:
		return float64(g.Calories)
	case MetricSleep:
		return g.SleepHours
	case MetricWater:
		return g.WaterLiters
	default:
		return 0
	}
}

// GoalStore holds the session's goals. Goals are not persisted.
type GoalStore struct {
	goals GoalSet
}

func NewGoalStore(initial GoalSet) *GoalStore {
	return &GoalStore{goals: initial}
}

func (s *GoalStore) Goals() GoalSet { return s.goals }

func (s *GoalStore) Goal(m Metric) float64 { return s.goals.Value(m) }

// SetGoal overwrites the goal for one metric. Bounds are enforced by the
// stepper that produced value, not here.
func (s *GoalStore) SetGoal(m Metric, value float64) {
	switch m {
	case MetricSteps:
		s.goals.Steps = int(math.Round(value))
	case MetricCalories:
		s.goals.Calories = int(math.Round(value))
	case MetricSleep:
		s.goals.SleepHours = value
	case MetricWater:
		s.goals.WaterLiters = value
	}
}

// Percent returns PercentComplete for the snapshot value against the stored goal.
func (s *GoalStore) Percent(m Metric, snap DaySnapshot) int {
	return PercentComplete(snap.Value(m), s.Goal(m))
}

// PercentComplete returns round(current/goal*100). The result is not clamped;
// a zero goal yields 0.
func PercentComplete(current, goal float64) int {
	if goal == 0 {
		return 0
	}
	return int(math.Round(current / goal * 100))
}

// BarWidth is PercentComplete clamped to [0, 100] for progress bars.
func BarWidth(current, goal float64) int {
	return min(max(PercentComplete(current, goal), 0), 100)
}

// GoalSettings describes the stepper and copy of the goal modal for a metric.
type GoalSettings struct {
	Metric   Metric
	Title    string
	Subtitle string
	Unit     string
	Min      float64
	Max      float64
	Step     float64
}

var goalSettings = map[Metric]GoalSettings{
	MetricSteps: {
		Metric:   MetricSteps,
		Title:    "Move Goal",
		Subtitle: "Set your daily steps goal.",
		Unit:     "STEPS/DAY",
		Min:      1000,
		Max:      20000,
		Step:     500,
	},
	MetricCalories: {
		Metric:   MetricCalories,
		Title:    "Calorie Goal",
		Subtitle: "Set your daily calorie burn goal.",
		Unit:     "CALORIES/DAY",
		Min:      200,
		Max:      5000,
		Step:     50,
	},
	MetricSleep: {
		Metric:   MetricSleep,
		Title:    "Sleep Goal",
		Subtitle: "Set your daily sleep goal.",
		Unit:     "HOURS/DAY",
		Min:      5,
		Max:      12,
		Step:     0.5,
	},
	MetricWater: {
		Metric:   MetricWater,
		Title:    "Water Goal",
		Subtitle: "Set your daily water intake goal.",
		Unit:     "LITERS/DAY",
		Min:      1,
		Max:      5,
		Step:     0.1,
	},
}

// SettingsFor returns the goal modal settings for m.
func SettingsFor(m Metric) (GoalSettings, bool) {
	s, ok := goalSettings[m]
	return s, ok
}

// Stepper returns a stepper over the settings' bounds starting at initial.
func (g GoalSettings) Stepper(initial float64) Stepper {
	return Stepper{Value: initial, Min: g.Min, Max: g.Max, Step: g.Step}
}

// Stepper is a bounded numeric input. Increment and Decrement never move
// Value outside [Min, Max].
type Stepper struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
}

func (s *Stepper) Increment() {
	if s.Value < s.Max {
		s.Value = s.round(math.Min(s.Value+s.Step, s.Max))
	}
}

func (s *Stepper) Decrement() {
	if s.Value > s.Min {
		s.Value = s.round(math.Max(s.Value-s.Step, s.Min))
	}
}

// round trims binary drift (1.2+0.1) to the step's decimal precision.
func (s Stepper) round(v float64) float64 {
	p := math.Pow10(decimals(s.Step))
	return math.Round(v*p) / p
}

func decimals(f float64) int {
	str := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(str, '.'); i >= 0 {
		return len(str) - i - 1
	}
	return 0
}
