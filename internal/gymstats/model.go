package gymstats

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used on the wire for workout and body metric dates.
const DateLayout = "2006-01-02"

// OtherMuscleGroup is the label used for exercises logged without a muscle group.
const OtherMuscleGroup = "Other"

// Exercise is a single logged entry of a workout: sets x reps at a given weight.
// Volume and OneRepMax are derived from the entry's own inputs.
type Exercise struct {
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	OneRepMax   float64 `json:"oneRepMax"`
}

// WithDerived returns a copy of the exercise with volume and estimated 1RM
// recomputed from sets, reps and weight.
func (e Exercise) WithDerived() Exercise {
	e.Volume = Volume(e.Sets, e.Reps, e.Weight)
	e.OneRepMax = EstimateOneRepMax(e.Weight, e.Reps)
	return e
}

type Workout struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	Exercises   []Exercise `json:"exercises"`
	TotalVolume float64    `json:"totalVolume"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Normalize recomputes all derived fields of the workout (entry volumes, entry 1RMs,
// total volume) and truncates the date to its calendar day.
func (w *Workout) Normalize() {
	for i := range w.Exercises {
		w.Exercises[i] = w.Exercises[i].WithDerived()
	}
	w.TotalVolume = ExercisesVolume(w.Exercises)
	w.Date = Day(w.Date)
}

// BodyMetric is a body measurement entry. Nil numeric fields were not recorded.
type BodyMetric struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Weight    *float64  `json:"weight,omitempty"`
	BodyFat   *float64  `json:"bodyFat,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PhotoRef  string    `json:"photoRef,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExerciseKey normalizes an exercise name for grouping, so "Bench Press",
// "bench press" and " Bench  Press " are the same exercise.
func ExerciseKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Day truncates t to the start of its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar day in DateLayout format.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date [%s]: %w", s, err)
	}
	return d, nil
}
