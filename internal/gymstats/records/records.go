// Package records derives personal records from the workout history.
// Records are never stored, they are recomputed from the full history on each read.
package records

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

// RecentWindow is how far back a record update counts as recent.
const RecentWindow = 30 * 24 * time.Hour

// AllMuscleGroups selects every record in FilterByMuscleGroup.
const AllMuscleGroups = "All"

type MaxWeight struct {
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	OneRepMax   float64   `json:"oneRepMax"`
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
}

type MaxOneRepMax struct {
	OneRepMax   float64   `json:"oneRepMax"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
}

type MaxVolume struct {
	Volume      float64   `json:"volume"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	Weight      float64   `json:"weight"`
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
}

// Record holds the three independently tracked maxima of one exercise.
// Each maximum may come from a different session.
type Record struct {
	ExerciseName   string       `json:"exerciseName"`
	MuscleGroup    string       `json:"muscleGroup"`
	MaxWeight      MaxWeight    `json:"maxWeight"`
	MaxOneRepMax   MaxOneRepMax `json:"maxOneRepMax"`
	MaxVolume      MaxVolume    `json:"maxVolume"`
	TotalSessions  int          `json:"totalSessions"`
	FirstPerformed time.Time    `json:"firstPerformed"`
	LastPerformed  time.Time    `json:"lastPerformed"`
}

// LatestUpdate returns the most recent date any of the three maxima was set.
func (r *Record) LatestUpdate() time.Time {
	latest := r.MaxWeight.Date
	if r.MaxOneRepMax.Date.After(latest) {
		latest = r.MaxOneRepMax.Date
	}
	if r.MaxVolume.Date.After(latest) {
		latest = r.MaxVolume.Date
	}
	return latest
}

// Key returns the record key of an exercise name, see gymstats.ExerciseKey.
func Key(exerciseName string) string {
	return gymstats.ExerciseKey(exerciseName)
}

func newRecord(w gymstats.Workout, ex gymstats.Exercise) *Record {
	return &Record{
		ExerciseName: strings.TrimSpace(ex.Name),
		MuscleGroup:  gymstats.MuscleGroupOf(ex),
		MaxWeight: MaxWeight{
			Weight:      ex.Weight,
			Reps:        ex.Reps,
			OneRepMax:   ex.OneRepMax,
			Date:        w.Date,
			WorkoutName: w.Name,
		},
		MaxOneRepMax: MaxOneRepMax{
			OneRepMax:   ex.OneRepMax,
			Weight:      ex.Weight,
			Reps:        ex.Reps,
			Date:        w.Date,
			WorkoutName: w.Name,
		},
		MaxVolume: MaxVolume{
			Volume:      ex.Volume,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			Weight:      ex.Weight,
			Date:        w.Date,
			WorkoutName: w.Name,
		},
		TotalSessions:  1,
		FirstPerformed: w.Date,
		LastPerformed:  w.Date,
	}
}

func (r *Record) update(w gymstats.Workout, ex gymstats.Exercise) {
	// strict comparisons: on ties the first seen entry keeps the record
	if ex.Weight > r.MaxWeight.Weight {
		r.MaxWeight = MaxWeight{
			Weight:      ex.Weight,
			Reps:        ex.Reps,
			OneRepMax:   ex.OneRepMax,
			Date:        w.Date,
			WorkoutName: w.Name,
		}
	}
	if ex.Volume > r.MaxVolume.Volume {
		r.MaxVolume = MaxVolume{
			Volume:      ex.Volume,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			Weight:      ex.Weight,
			Date:        w.Date,
			WorkoutName: w.Name,
		}
	}
	if ex.OneRepMax > r.MaxOneRepMax.OneRepMax {
		r.MaxOneRepMax = MaxOneRepMax{
			OneRepMax:   ex.OneRepMax,
			Weight:      ex.Weight,
			Reps:        ex.Reps,
			Date:        w.Date,
			WorkoutName: w.Name,
		}
	}

	r.TotalSessions++
	if w.Date.Before(r.FirstPerformed) {
		r.FirstPerformed = w.Date
	}
	if w.Date.After(r.LastPerformed) {
		r.LastPerformed = w.Date
	}
}

// Calculate scans the whole (unsorted) history once and returns the records keyed by Key.
// Derived values are recomputed from each entry's sets, reps and weight.
func Calculate(workouts []gymstats.Workout) map[string]*Record {
	records := make(map[string]*Record)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			key := Key(ex.Name)
			if key == "" {
				continue
			}

			ex = ex.WithDerived()
			if r, ok := records[key]; ok {
				r.update(w, ex)
			} else {
				records[key] = newRecord(w, ex)
			}
		}
	}
	return records
}

// List returns the records ordered by exercise name.
func List(records map[string]*Record) []*Record {
	list := make([]*Record, 0, len(records))
	for _, r := range records {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		return Key(list[i].ExerciseName) < Key(list[j].ExerciseName)
	})
	return list
}

// Recent returns the records with any maximum set within RecentWindow before now,
// most recently updated first.
func Recent(records map[string]*Record, now time.Time) []*Record {
	cutoff := now.Add(-RecentWindow)
	recent := make([]*Record, 0)
	for _, r := range List(records) {
		if !r.LatestUpdate().Before(cutoff) {
			recent = append(recent, r)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LatestUpdate().After(recent[j].LatestUpdate())
	})
	return recent
}

// FilterByMuscleGroup keeps the records of the given muscle group.
// Empty group or AllMuscleGroups keeps everything.
func FilterByMuscleGroup(records []*Record, muscleGroup string) []*Record {
	muscleGroup = strings.TrimSpace(muscleGroup)
	if muscleGroup == "" || strings.EqualFold(muscleGroup, AllMuscleGroups) {
		return records
	}
	filtered := make([]*Record, 0)
	for _, r := range records {
		if strings.EqualFold(r.MuscleGroup, muscleGroup) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MuscleGroups returns the distinct muscle groups of the records, sorted.
func MuscleGroups(records map[string]*Record) []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, r := range records {
		if !seen[r.MuscleGroup] {
			seen[r.MuscleGroup] = true
			groups = append(groups, r.MuscleGroup)
		}
	}
	sort.Strings(groups)
	return groups
}

func sortedBy(records []*Record, value func(r *Record) float64) []*Record {
	sorted := make([]*Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := value(sorted[i]), value(sorted[j])
		if vi != vj {
			return vi > vj
		}
		return Key(sorted[i].ExerciseName) < Key(sorted[j].ExerciseName)
	})
	return sorted
}

func SortedByWeight(records []*Record) []*Record {
	return sortedBy(records, func(r *Record) float64 { return r.MaxWeight.Weight })
}

func SortedByOneRepMax(records []*Record) []*Record {
	return sortedBy(records, func(r *Record) float64 { return r.MaxOneRepMax.OneRepMax })
}

func SortedByVolume(records []*Record) []*Record {
	return sortedBy(records, func(r *Record) float64 { return r.MaxVolume.Volume })
}

type Summary struct {
	TotalExercises int     `json:"totalExercises"`
	RecentRecords  int     `json:"recentRecords"`
	HeaviestWeight float64 `json:"heaviestWeight"`
	HighestOneRM   float64 `json:"highestOneRepMax"`
}

// Summarize builds the headline numbers for the selected records.
// Exercise and recent counts cover all records, the maxima only the selection.
func Summarize(all map[string]*Record, selected []*Record, now time.Time) Summary {
	summary := Summary{
		TotalExercises: len(all),
		RecentRecords:  len(Recent(all, now)),
	}
	for _, r := range selected {
		if r.MaxWeight.Weight > summary.HeaviestWeight {
			summary.HeaviestWeight = r.MaxWeight.Weight
		}
		if r.MaxOneRepMax.OneRepMax > summary.HighestOneRM {
			summary.HighestOneRM = r.MaxOneRepMax.OneRepMax
		}
	}
	return summary
}
