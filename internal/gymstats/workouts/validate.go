package workouts

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats"
)

const MaxSets = 100

var (
	ErrInvalidWorkout  = errors.New("invalid workout")
	ErrInvalidExercise = errors.New("invalid exercise")
	ErrInvalidReps     = errors.New("invalid reps")
	ErrWorkoutExists   = errors.New("workout already exists")
)

// Validate checks a workout before it is persisted.
func Validate(w gymstats.Workout) error {
	if strings.TrimSpace(w.UserID) == "" {
		return fmt.Errorf("%w: missing user", ErrInvalidWorkout)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidWorkout)
	}
	if w.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidWorkout)
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("%w: no exercises", ErrInvalidWorkout)
	}

	for i, ex := range w.Exercises {
		if err := validateExercise(ex); err != nil {
			return fmt.Errorf("exercise %d: %w", i, err)
		}
	}

	return nil
}

func validateExercise(ex gymstats.Exercise) error {
	if strings.TrimSpace(ex.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidExercise)
	}
	if ex.Sets < 1 || ex.Sets > MaxSets {
		return fmt.Errorf("%w: sets [%d] out of range", ErrInvalidExercise, ex.Sets)
	}
	if ex.Reps < 1 || ex.Reps > gymstats.MaxBrzyckiReps {
		return fmt.Errorf("%w: reps [%d] must be between 1 and %d", ErrInvalidReps, ex.Reps, gymstats.MaxBrzyckiReps)
	}
	if ex.Weight < 0 || math.IsNaN(ex.Weight) || math.IsInf(ex.Weight, 0) {
		return fmt.Errorf("%w: weight [%v]", ErrInvalidExercise, ex.Weight)
	}
	return nil
}
