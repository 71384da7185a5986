package trends

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

type ProgressPoint struct {
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	OneRepMax   float64   `json:"oneRepMax"`
	Volume      float64   `json:"volume"`
}

type VolumePoint struct {
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
	Volume      float64   `json:"volume"`
}

// ExerciseProgress returns the chronological progress series of a single exercise
// over the trailing days. Only the first matching entry of each workout is used.
func ExerciseProgress(workouts []gymstats.Workout, exercise string, now time.Time, days int) []ProgressPoint {
	key := gymstats.ExerciseKey(exercise)
	points := []ProgressPoint{}
	if key == "" {
		return points
	}

	for _, w := range InWindow(workouts, now, days) {
		for _, ex := range w.Exercises {
			if gymstats.ExerciseKey(ex.Name) != key {
				continue
			}
			ex = ex.WithDerived()
			points = append(points, ProgressPoint{
				Date:        w.Date,
				WorkoutName: w.Name,
				Weight:      ex.Weight,
				Reps:        ex.Reps,
				OneRepMax:   ex.OneRepMax,
				Volume:      ex.Volume,
			})
			break
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// VolumeProgress returns the total volume of each workout in the trailing days, oldest first.
func VolumeProgress(workouts []gymstats.Workout, now time.Time, days int) []VolumePoint {
	inWindow := InWindow(workouts, now, days)
	points := make([]VolumePoint, 0, len(inWindow))
	for _, w := range inWindow {
		points = append(points, VolumePoint{
			Date:        w.Date,
			WorkoutName: w.Name,
			Volume:      w.TotalVolume,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// ExerciseNames lists the distinct exercises logged, by their first seen display name, sorted.
func ExerciseNames(workouts []gymstats.Workout) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			key := gymstats.ExerciseKey(ex.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, strings.TrimSpace(ex.Name))
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
