package gymstats

import (
	"sort"
	"strings"
)

type MuscleGroupVolume struct {
	MuscleGroup string  `json:"muscleGroup"`
	Volume      float64 `json:"volume"`
	Percentage  float64 `json:"percentage"`
}

// MuscleGroupOf returns the muscle group label of the exercise, OtherMuscleGroup if missing.
func MuscleGroupOf(ex Exercise) string {
	group := strings.TrimSpace(ex.MuscleGroup)
	if group == "" {
		return OtherMuscleGroup
	}
	return group
}

func GroupByMuscleGroup(exercises []Exercise) map[string][]Exercise {
	groups := make(map[string][]Exercise)
	for _, ex := range exercises {
		group := MuscleGroupOf(ex)
		groups[group] = append(groups[group], ex)
	}
	return groups
}

// MuscleGroupVolumes maps each muscle group to the summed volume of its exercises.
func MuscleGroupVolumes(exercises []Exercise) map[string]float64 {
	volumes := make(map[string]float64)
	for group, groupExercises := range GroupByMuscleGroup(exercises) {
		volumes[group] = ExercisesVolume(groupExercises)
	}
	return volumes
}

// WorkoutsMuscleGroupVolumes sums MuscleGroupVolumes over all given workouts.
func WorkoutsMuscleGroupVolumes(workouts []Workout) map[string]float64 {
	totals := make(map[string]float64)
	for _, w := range workouts {
		for group, volume := range MuscleGroupVolumes(w.Exercises) {
			totals[group] += volume
		}
	}
	return totals
}

// SortedMuscleGroupVolumes orders the volumes by volume descending, then label,
// and attaches each group's share of the total volume.
func SortedMuscleGroupVolumes(volumes map[string]float64) []MuscleGroupVolume {
	var total float64
	for _, v := range volumes {
		total += v
	}

	sorted := make([]MuscleGroupVolume, 0, len(volumes))
	for group, v := range volumes {
		var p float64
		if total > 0 {
			p = v / total * 100
			// leave only 2 decimals
			p = float64(int(p*100)) / 100
		}
		sorted = append(sorted, MuscleGroupVolume{
			MuscleGroup: group,
			Volume:      v,
			Percentage:  p,
		})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Volume != sorted[j].Volume {
			return sorted[i].Volume > sorted[j].Volume
		}
		return sorted[i].MuscleGroup < sorted[j].MuscleGroup
	})

	return sorted
}
