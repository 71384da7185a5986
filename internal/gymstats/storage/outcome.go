// Package storage holds what the workout and body metric stores share:
// the save outcome reported to clients, and the best-effort remote mirror.
package storage

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	CollectionWorkouts    = "workouts"
	CollectionBodyMetrics = "bodyMetrics"
)

type SaveOutcome string

const (
	// OutcomePersistedLocally means no mirror is configured
	OutcomePersistedLocally     SaveOutcome = "persisted_locally"
	OutcomePersistedAndMirrored SaveOutcome = "persisted_and_mirrored"
	OutcomeMirrorFailed         SaveOutcome = "persisted_locally_mirror_failed"
)

// SaveResult describes a successful save. A failed mirror write never fails the save,
// it is reported through the outcome and MirrorError instead.
type SaveResult struct {
	ID          string      `json:"id"`
	Outcome     SaveOutcome `json:"outcome"`
	MirrorError string      `json:"mirrorError,omitempty"`
}

// Mirror keeps a secondary copy of saved records.
type Mirror interface {
	Put(ctx context.Context, userID, collection, id string, record any) error
}

// MirrorRecord writes the already persisted record to the mirror, bounded by timeout,
// and reports the outcome. A nil mirror results in OutcomePersistedLocally.
func MirrorRecord(
	ctx context.Context,
	mirror Mirror,
	timeout time.Duration,
	userID, collection, id string,
	record any,
) *SaveResult {
	result := &SaveResult{
		ID:      id,
		Outcome: OutcomePersistedLocally,
	}
	if mirror == nil {
		return result
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := mirror.Put(ctx, userID, collection, id, record); err != nil {
		log.Warnf("mirror %s/%s [%s]: %s", userID, collection, id, err)
		result.Outcome = OutcomeMirrorFailed
		result.MirrorError = err.Error()
		return result
	}

	result.Outcome = OutcomePersistedAndMirrored
	return result
}
