package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// RedisMirror keeps one hash per user and collection, with record ids as fields
// and JSON encoded records as values.
type RedisMirror struct {
	rdb *redis.Client
}

var _ Mirror = (*RedisMirror)(nil)

func NewRedisMirror(rdb *redis.Client) *RedisMirror {
	return &RedisMirror{
		rdb: rdb,
	}
}

func MirrorKey(userID, collection string) string {
	return fmt.Sprintf("gymtracker:users:%s:%s", userID, collection)
}

func (m *RedisMirror) Put(ctx context.Context, userID, collection, id string, record any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mirror.redis.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.String("id", id),
	)

	recordJson, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := m.rdb.HSet(ctx, MirrorKey(userID, collection), id, string(recordJson)).Err(); err != nil {
		return fmt.Errorf("hset: %w", err)
	}

	return nil
}

// List returns the raw JSON records of a user's collection, by record id.
func (m *RedisMirror) List(ctx context.Context, userID, collection string) (_ map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mirror.redis.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := m.rdb.HGetAll(ctx, MirrorKey(userID, collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall: %w", err)
	}
	return records, nil
}
