package trends

import (
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

const (
	// WeeklyGoal is the number of workouts per week the dashboard tracks progress against.
	WeeklyGoal = 4
	// DefaultActivityDays is the length of the dashboard activity series.
	DefaultActivityDays = 14
)

type DashboardStats struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	WeeklyWorkouts  int     `json:"weeklyWorkouts"`
	MonthlyWorkouts int     `json:"monthlyWorkouts"`
	TotalVolume     float64 `json:"totalVolume"`
	AvgVolume       float64 `json:"avgVolume"`
	CurrentWeight   float64 `json:"currentWeight"`
	WeightChange    float64 `json:"weightChange"`
	Streak          int     `json:"streak"`
	WeeklyGoal      int     `json:"weeklyGoal"`
	// WeeklyGoalProgress is a percentage, capped at 100
	WeeklyGoalProgress float64 `json:"weeklyGoalProgress"`
}

// Dashboard aggregates the summary tiles shown on the dashboard.
// The weight change compares the current weight with the second metric entry,
// falling back to the current weight when that entry has no weight.
func Dashboard(workouts []gymstats.Workout, metrics []gymstats.BodyMetric, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalWorkouts:   len(workouts),
		WeeklyWorkouts:  WeeklyCount(workouts, now),
		MonthlyWorkouts: MonthlyCount(workouts, now),
		TotalVolume:     gymstats.WorkoutsVolume(workouts),
		AvgVolume:       gymstats.AverageWorkoutVolume(workouts),
		Streak:          Streak(workouts, now),
		WeeklyGoal:      WeeklyGoal,
	}

	for _, m := range metrics {
		if m.Weight != nil && *m.Weight != 0 {
			stats.CurrentWeight = *m.Weight
			break
		}
	}

	previousWeight := stats.CurrentWeight
	if len(metrics) > 1 && metrics[1].Weight != nil && *metrics[1].Weight != 0 {
		previousWeight = *metrics[1].Weight
	}
	stats.WeightChange = roundTo1(stats.CurrentWeight - previousWeight)

	stats.WeeklyGoalProgress = math.Min(100, float64(stats.WeeklyWorkouts)/WeeklyGoal*100)

	return stats
}

type DayActivity struct {
	Date     time.Time `json:"date"`
	Workouts int       `json:"workouts"`
	Volume   float64   `json:"volume"`
}

// Activity returns per-day workout counts and volumes for the trailing days
// calendar days ending with today, oldest first.
func Activity(workouts []gymstats.Workout, now time.Time, days int) []DayActivity {
	if days <= 0 {
		return []DayActivity{}
	}

	byDay := make(map[time.Time]*DayActivity, len(workouts))
	for _, w := range workouts {
		d := gymstats.Day(w.Date)
		a, ok := byDay[d]
		if !ok {
			a = &DayActivity{Date: d}
			byDay[d] = a
		}
		a.Workouts++
		a.Volume += w.TotalVolume
	}

	today := gymstats.Day(now)
	activity := make([]DayActivity, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		if a, ok := byDay[d]; ok {
			activity = append(activity, *a)
			continue
		}
		activity = append(activity, DayActivity{Date: d})
	}
	return activity
}
