package bodymetrics

import (
	"context"
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

func (r *Repo) Add(ctx context.Context, metric gymstats.BodyMetric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodymetrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric.id", metric.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO body_metric
				(id, user_id, date, weight, body_fat, notes, photo_ref, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		metric.ID, metric.UserID, metric.Date, metric.Weight, metric.BodyFat, metric.Notes, metric.PhotoRef, metric.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrMetricExists
		}
		return fmt.Errorf("insert body metric: %w", err)
	}

	return nil
}

// ListAll returns all the user's body metric entries, newest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []gymstats.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodymetrics.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, weight, body_fat, notes, photo_ref, created_at
			FROM body_metric
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query body metrics: %w", err)
	}
	defer rows.Close()

	var metrics []gymstats.BodyMetric
	for rows.Next() {
		var m gymstats.BodyMetric
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Date, &m.Weight, &m.BodyFat, &m.Notes, &m.PhotoRef, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("metrics.count", len(metrics)))
	return metrics, nil
}
