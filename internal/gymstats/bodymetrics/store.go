package bodymetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/storage"
)

//go:generate mockgen -source=$GOFILE -destination=bodymetrics_mocks_test.go -package=bodymetrics_test

type metricsRepo interface {
	Add(ctx context.Context, metric gymstats.BodyMetric) error
	ListAll(ctx context.Context, userID string) ([]gymstats.BodyMetric, error)
}

// Store persists body metrics to the primary repo first, then to the mirror (if any).
type Store struct {
	repo          metricsRepo
	mirror        storage.Mirror
	mirrorTimeout time.Duration
}

func NewStore(repo metricsRepo, mirror storage.Mirror, mirrorTimeout time.Duration) *Store {
	return &Store{
		repo:          repo,
		mirror:        mirror,
		mirrorTimeout: mirrorTimeout,
	}
}

func (s *Store) Save(ctx context.Context, metric gymstats.BodyMetric) (*storage.SaveResult, error) {
	if err := Prepare(&metric); err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, metric); err != nil {
		return nil, fmt.Errorf("add body metric: %w", err)
	}

	return storage.MirrorRecord(
		ctx, s.mirror, s.mirrorTimeout,
		metric.UserID, storage.CollectionBodyMetrics, metric.ID,
		metric,
	), nil
}

// ListAll returns all the user's body metric entries, newest first.
func (s *Store) ListAll(ctx context.Context, userID string) ([]gymstats.BodyMetric, error) {
	metrics, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	if metrics == nil {
		metrics = []gymstats.BodyMetric{}
	}
	return metrics, nil
}
