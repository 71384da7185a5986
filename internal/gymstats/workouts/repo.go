package workouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout gymstats.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout
				(id, user_id, name, date, exercises, total_volume, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		workout.ID, workout.UserID, workout.Name, workout.Date, exercisesJson, workout.TotalVolume, workout.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrWorkoutExists
		}
		return fmt.Errorf("insert workout: %w", err)
	}

	return nil
}

// ListAll returns all the user's workouts, newest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []gymstats.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, date, exercises, total_volume, created_at
			FROM workout
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []gymstats.Workout
	for rows.Next() {
		var w gymstats.Workout
		var exercisesJson []byte
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.Date, &exercisesJson, &w.TotalVolume, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises of [%s]: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}
