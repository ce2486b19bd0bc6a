// Package fitness holds the dashboard's metric model: the mock daily series,
// the day selector, the goal store and the small amount of arithmetic the
// views need (percentages, ring geometry, weekly aggregates).
package fitness

// DailyCount is one labelled integer sample (steps, calories).
type DailyCount struct {
	Day   string
	Count int
}

// DailyHours is one labelled sleep sample.
type DailyHours struct {
	Day   string
	Hours float64
}

// DailyAmount is one labelled water sample in liters.
type DailyAmount struct {
	Day    string
	Liters float64
}

// HourlyRate is one heart-rate reading during the day.
type HourlyRate struct {
	Time string
	BPM  int
}

type StepsData struct {
	Current int
	Goal    int
	History []DailyCount
}

type CaloriesData struct {
	Burned  int
	Goal    int
	History []DailyCount
}

type HeartRateData struct {
	Current int
	Min     int
	Max     int
	History []HourlyRate
}

type SleepData struct {
	Hours   float64
	Goal    float64
	History []DailyHours
}

type WaterData struct {
	Current float64
	Goal    float64
	History []DailyAmount
}

// Data is the full metric set backing the dashboard. It is immutable for
// the session; callers get a fresh copy from MockData.
type Data struct {
	Steps     StepsData
	Calories  CaloriesData
	HeartRate HeartRateData
	Sleep     SleepData
	Water     WaterData
}

// HistoryLen is the number of samples in every daily series.
const HistoryLen = 7

// MockData returns the static metric set shown by the dashboard.
func MockData() Data {
	return Data{
		Steps: StepsData{
			Current: 8435,
			Goal:    10000,
			History: []DailyCount{
				{Day: "Mon", Count: 9123},
				{Day: "Tue", Count: 7456},
				{Day: "Wed", Count: 10234},
				{Day: "Thu", Count: 8652},
				{Day: "Fri", Count: 6789},
				{Day: "Sat", Count: 4321},
				{Day: "Sun", Count: 8435},
			},
		},
		Calories: CaloriesData{
			Burned: 1250,
			Goal:   2000,
			History: []DailyCount{
				{Day: "Mon", Count: 1450},
				{Day: "Tue", Count: 1320},
				{Day: "Wed", Count: 1780},
				{Day: "Thu", Count: 1560},
				{Day: "Fri", Count: 1230},
				{Day: "Sat", Count: 890},
				{Day: "Sun", Count: 1250},
			},
		},
		HeartRate: HeartRateData{
			Current: 72,
			Min:     58,
			Max:     142,
			History: []HourlyRate{
				{Time: "6am", BPM: 62},
				{Time: "9am", BPM: 78},
				{Time: "12pm", BPM: 84},
				{Time: "3pm", BPM: 76},
				{Time: "6pm", BPM: 88},
				{Time: "9pm", BPM: 72},
			},
		},
		Sleep: SleepData{
			Hours: 6.5,
			Goal:  8,
			History: []DailyHours{
				{Day: "Mon", Hours: 7.2},
				{Day: "Tue", Hours: 6.8},
				{Day: "Wed", Hours: 8.1},
				{Day: "Thu", Hours: 7.5},
				{Day: "Fri", Hours: 5.9},
				{Day: "Sat", Hours: 8.4},
				{Day: "Sun", Hours: 6.5},
			},
		},
		Water: WaterData{
			Current: 1.2,
			Goal:    2.5,
			History: []DailyAmount{
				{Day: "Mon", Liters: 1.8},
				{Day: "Tue", Liters: 2.1},
				{Day: "Wed", Liters: 2.4},
				{Day: "Thu", Liters: 1.9},
				{Day: "Fri", Liters: 1.6},
				{Day: "Sat", Liters: 1.0},
				{Day: "Sun", Liters: 1.2},
			},
		},
	}
}
