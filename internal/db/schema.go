package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Schema creates the gymtracker tables if they are missing.
const Schema = `
CREATE TABLE IF NOT EXISTS public.workout
(
    id           UUID PRIMARY KEY,
    user_id      VARCHAR          NOT NULL,
    name         VARCHAR          NOT NULL,
    date         DATE             NOT NULL,
    exercises    JSONB            NOT NULL DEFAULT '[]',
    total_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at   TIMESTAMPTZ      NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_workout_user_date ON public.workout (user_id, date DESC, created_at DESC);

CREATE TABLE IF NOT EXISTS public.body_metric
(
    id         UUID PRIMARY KEY,
    user_id    VARCHAR     NOT NULL,
    date       DATE        NOT NULL,
    weight     DOUBLE PRECISION,
    body_fat   DOUBLE PRECISION,
    notes      VARCHAR     NOT NULL DEFAULT '',
    photo_ref  VARCHAR     NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_body_metric_user_date ON public.body_metric (user_id, date DESC, created_at DESC);
`

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema runs Schema on the given pool or connection.
func EnsureSchema(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
