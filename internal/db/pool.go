package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName   = "gymtracker"
	defaultMaxConns   = 10
	healthCheckPeriod = 30 * time.Second
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	MaxConns       int32 // defaults to 10
	TracingEnabled bool
}

// ConnString builds a password-less postgres URL; the password, if any,
// comes from PGPASSWORD or the pgpass file.
func ConnString(params NewDBPoolParams) string {
	user := params.DBUser
	if user == "" {
		user = "postgres"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.User(user),
		Host:     net.JoinHostPort(params.DBHost, params.DBPort),
		Path:     "/" + params.DBName,
		RawQuery: url.Values{"application_name": {applicationName}}.Encode(),
	}
	return u.String()
}

// PoolConfig parses the connection params and applies the pool settings.
func PoolConfig(params NewDBPoolParams) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(params))
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolConfig.MaxConns = params.MaxConns
	if poolConfig.MaxConns <= 0 {
		poolConfig.MaxConns = defaultMaxConns
	}
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	return poolConfig, nil
}

// NewDBPool does not connect eagerly; callers ping when they need to know.
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(params)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}
