package gymstats

import "math"

// Volume is the workload of an entry: sets * reps * weight.
// Bodyweight movements (weight 0) have no volume.
func Volume(sets, reps int, weight float64) float64 {
	if sets <= 0 || reps <= 0 || weight <= 0 {
		return 0
	}
	return float64(sets) * float64(reps) * weight
}

// ExercisesVolume sums the volume of the given entries, recomputed from their inputs.
func ExercisesVolume(exercises []Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		total += Volume(ex.Sets, ex.Reps, ex.Weight)
	}
	return total
}

// WorkoutsVolume sums the precomputed total volume of each workout.
func WorkoutsVolume(workouts []Workout) float64 {
	var total float64
	for _, w := range workouts {
		total += w.TotalVolume
	}
	return total
}

// AverageWorkoutVolume returns the rounded mean workout volume, 0 for no workouts.
func AverageWorkoutVolume(workouts []Workout) float64 {
	if len(workouts) == 0 {
		return 0
	}
	return math.Round(WorkoutsVolume(workouts) / float64(len(workouts)))
}
