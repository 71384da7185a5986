package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/storage"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout gymstats.Workout) error
	ListAll(ctx context.Context, userID string) ([]gymstats.Workout, error)
}

// Store persists workouts to the primary repo first, then to the mirror (if any).
type Store struct {
	repo          workoutsRepo
	mirror        storage.Mirror
	mirrorTimeout time.Duration
}

func NewStore(repo workoutsRepo, mirror storage.Mirror, mirrorTimeout time.Duration) *Store {
	return &Store{
		repo:          repo,
		mirror:        mirror,
		mirrorTimeout: mirrorTimeout,
	}
}

// Prepare validates the workout, assigns its id and creation time if missing,
// and recomputes all derived fields.
func Prepare(w *gymstats.Workout) error {
	if err := Validate(*w); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	w.Name = strings.TrimSpace(w.Name)
	w.Normalize()
	return nil
}

func (s *Store) Save(ctx context.Context, workout gymstats.Workout) (*storage.SaveResult, error) {
	if err := Prepare(&workout); err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, workout); err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	return storage.MirrorRecord(
		ctx, s.mirror, s.mirrorTimeout,
		workout.UserID, storage.CollectionWorkouts, workout.ID,
		workout,
	), nil
}

// ListAll returns all the user's workouts, newest first.
func (s *Store) ListAll(ctx context.Context, userID string) ([]gymstats.Workout, error) {
	workouts, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if workouts == nil {
		workouts = []gymstats.Workout{}
	}
	return workouts, nil
}
