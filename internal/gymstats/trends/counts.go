// Package trends derives time based aggregates from workout and body metric snapshots:
// recent counts, streaks, trend directions, activity and calendar data, progress series.
// Snapshots are expected newest-first, the way the stores load them.
package trends

import (
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

const (
	day         = 24 * time.Hour
	WeekWindow  = 7 * day
	MonthWindow = 30 * day
)

func countAfter(workouts []gymstats.Workout, cutoff time.Time) int {
	count := 0
	for _, w := range workouts {
		if w.Date.After(cutoff) {
			count++
		}
	}
	return count
}

// WeeklyCount counts the workouts dated after now - 7 days.
func WeeklyCount(workouts []gymstats.Workout, now time.Time) int {
	return countAfter(workouts, now.Add(-WeekWindow))
}

// MonthlyCount counts the workouts dated after now - 30 days.
func MonthlyCount(workouts []gymstats.Workout, now time.Time) int {
	return countAfter(workouts, now.Add(-MonthWindow))
}

// Streak walks the newest-first workouts starting from now. Each workout extends
// the streak while its distance in whole days from the previous anchor does not
// exceed streak+1, so the tolerated gap grows with the streak. The first gap over
// the tolerance ends the walk.
func Streak(workouts []gymstats.Workout, now time.Time) int {
	streak := 0
	anchor := now
	for _, w := range workouts {
		daysDiff := int(math.Floor(anchor.Sub(w.Date).Hours() / 24))
		if daysDiff > streak+1 {
			break
		}
		streak++
		anchor = w.Date
	}
	return streak
}

// InWindow returns the workouts dated on or after now - days.
// Non-positive days selects all workouts.
func InWindow(workouts []gymstats.Workout, now time.Time, days int) []gymstats.Workout {
	if days <= 0 {
		return workouts
	}
	cutoff := now.AddDate(0, 0, -days)
	inWindow := make([]gymstats.Workout, 0, len(workouts))
	for _, w := range workouts {
		if !w.Date.Before(cutoff) {
			inWindow = append(inWindow, w)
		}
	}
	return inWindow
}
