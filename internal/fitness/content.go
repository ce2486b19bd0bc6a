package fitness

// Static content rendered by the activity, nutrition and workouts tabs.

type ScheduledWorkout struct {
	Day      string
	Name     string
	Time     string
	Duration string
}

type CompletedWorkout struct {
	Date      string
	Name      string
	Stats     string
	Intensity string
}

type Record struct {
	Label string
	Value string
	Date  string
}

type HeartRateZone struct {
	Zone    string
	Percent int
	Time    string
}

type Meal struct {
	Meal     string
	Time     string
	Calories int
	Items    string
}

type Macro struct {
	Name    string
	Percent int
	Grams   int
}

type FoodGroup struct {
	Name  string
	Items string
}

type Program struct {
	Name        string
	Progress    int
	StartDate   string
	EndDate     string
	NextWorkout string
}

type WeeklyGoal struct {
	Name    string
	Current int
	Goal    int
	Unit    string
}

// Content groups everything that is not a daily metric.
type Content struct {
	Upcoming          []ScheduledWorkout
	Recent            []CompletedWorkout
	RunningRecords    []Record
	StrengthRecords   []Record
	HighlightRecords  []Record
	Zones             []HeartRateZone
	CaloriesConsumed  int
	Macros            []Macro
	Meals             []Meal
	RecommendedFoods  []FoodGroup
	Programs          []Program
	WeeklyGoals       []WeeklyGoal
	WaterGlassesDaily int
}

// MockContent returns the static dashboard content.
func MockContent() Content {
	recent := []CompletedWorkout{
		{Date: "Today", Name: "Morning Run", Stats: "5.2 km • 27 min • 326 kcal", Intensity: "Moderate"},
		{Date: "Yesterday", Name: "Upper Body", Stats: "45 min • 280 kcal", Intensity: "Intense"},
		{Date: "Monday", Name: "Yoga", Stats: "30 min • 120 kcal", Intensity: "Light"},
	}
	return Content{
		Upcoming: []ScheduledWorkout{
			{Day: "Today", Name: "Upper Body Strength", Time: "5:30 PM", Duration: "45 min"},
			{Day: "Tomorrow", Name: "Cardio HIIT", Time: "6:00 AM", Duration: "30 min"},
			{Day: "Wednesday", Name: "Lower Body & Core", Time: "5:30 PM", Duration: "50 min"},
		},
		Recent: recent,
		RunningRecords: []Record{
			{Label: "Fastest 5K", Value: "23:45", Date: "May 15"},
			{Label: "Longest Run", Value: "14.8 km", Date: "April 30"},
			{Label: "Best Pace", Value: "4:35 /km", Date: "May 2"},
		},
		StrengthRecords: []Record{
			{Label: "Squat", Value: "120 kg", Date: "June 3"},
			{Label: "Bench Press", Value: "85 kg", Date: "May 28"},
			{Label: "Deadlift", Value: "150 kg", Date: "June 5"},
		},
		HighlightRecords: []Record{
			{Label: "Fastest 5K", Value: "23:45", Date: "May 15"},
			{Label: "Longest Run", Value: "14.8 km", Date: "April 30"},
			{Label: "Max Squat", Value: "120 kg", Date: "June 3"},
			{Label: "Push-ups", Value: "45 reps", Date: "May 22"},
		},
		Zones: []HeartRateZone{
			{Zone: "Zone 1 (Recovery)", Percent: 30, Time: "15 min"},
			{Zone: "Zone 2 (Endurance)", Percent: 45, Time: "22 min"},
			{Zone: "Zone 3 (Tempo)", Percent: 20, Time: "10 min"},
			{Zone: "Zone 4 (Threshold)", Percent: 5, Time: "3 min"},
			{Zone: "Zone 5 (Max)", Percent: 0, Time: "0 min"},
		},
		CaloriesConsumed: 1840,
		Macros: []Macro{
			{Name: "Carbs", Percent: 42, Grams: 196},
			{Name: "Protein", Percent: 30, Grams: 138},
			{Name: "Fats", Percent: 28, Grams: 58},
		},
		Meals: []Meal{
			{Meal: "Breakfast", Time: "7:30 AM", Calories: 420, Items: "Oatmeal with berries, Greek yogurt"},
			{Meal: "Lunch", Time: "12:15 PM", Calories: 650, Items: "Grilled chicken salad, whole grain bread"},
			{Meal: "Snack", Time: "3:30 PM", Calories: 180, Items: "Protein shake, banana"},
			{Meal: "Dinner", Time: "7:00 PM", Calories: 590, Items: "Salmon, quinoa, roasted vegetables"},
		},
		RecommendedFoods: []FoodGroup{
			{Name: "Protein Sources", Items: "Chicken, Eggs, Greek Yogurt"},
			{Name: "Complex Carbs", Items: "Sweet Potato, Brown Rice, Oats"},
			{Name: "Healthy Fats", Items: "Avocado, Nuts, Olive Oil"},
		},
		Programs: []Program{
			{Name: "12-Week Strength Builder", Progress: 65, StartDate: "Apr 12", EndDate: "Jul 5", NextWorkout: "Upper Body - Day 4"},
			{Name: "5K Training Plan", Progress: 40, StartDate: "May 1", EndDate: "Jun 15", NextWorkout: "Speed Intervals - Day 8"},
		},
		WeeklyGoals: []WeeklyGoal{
			{Name: "Workouts", Current: 3, Goal: 5},
			{Name: "Active Minutes", Current: 180, Goal: 300},
			{Name: "Calories Burned", Current: 1750, Goal: 3000, Unit: "kcal"},
		},
		WaterGlassesDaily: 8,
	}
}

// MealCalories sums the calories of all meals.
func (c Content) MealCalories() int {
	total := 0
	for _, m := range c.Meals {
		total += m.Calories
	}
	return total
}
