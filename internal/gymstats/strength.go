package gymstats

import "math"

// MaxBrzyckiReps is the highest rep count the Brzycki formula is defined for;
// at 37 reps its denominator reaches zero.
const MaxBrzyckiReps = 36

// EstimateOneRepMax estimates the single repetition maximum for a set of reps at weight,
// using the Brzycki formula: weight * 36 / (37 - reps), rounded to a whole number.
// A single rep is already a 1RM, so the weight is returned unchanged.
// Reps above MaxBrzyckiReps are clamped, reps below 1 yield 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps < 1 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	if reps > MaxBrzyckiReps {
		reps = MaxBrzyckiReps
	}
	return math.Round(weight * (36 / float64(37-reps)))
}
