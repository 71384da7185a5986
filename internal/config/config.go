package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxBackups int    `toml:"log_max_backups"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// remote mirror of saved workouts and body metrics, kept in redis
	MirrorEnabled bool     `toml:"mirror_enabled"`
	MirrorTimeout Duration `toml:"mirror_timeout"`
	// progress photos
	PhotosRootPath    string `toml:"photos_root_path"`
	PhotoMaxSizeBytes int64  `toml:"photo_max_size_bytes"`
	// analytics
	RecordsCacheSizeBytes  int      `toml:"records_cache_size_bytes"`
	RecordsCacheExpiration Duration `toml:"records_cache_expiration"`
	// misc
	WriteRateLimitAllowedPerMin int      `toml:"write_rate_limit_allowed_per_min"`
	SessionTTL                  Duration `toml:"session_ttl"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

// Duration is a time.Duration read from a TOML string, e.g. "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the config of the given environment,
// with defaults applied to the values left out.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found in [%s]", env, path)
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.MirrorTimeout.Duration == 0 {
		c.MirrorTimeout.Duration = 2 * time.Second
	}
	if c.PhotoMaxSizeBytes == 0 {
		c.PhotoMaxSizeBytes = 10 << 20
	}
	if c.RecordsCacheSizeBytes == 0 {
		c.RecordsCacheSizeBytes = 10 * 1024 * 1024
	}
	if c.RecordsCacheExpiration.Duration == 0 {
		c.RecordsCacheExpiration.Duration = 10 * time.Minute
	}
	if c.WriteRateLimitAllowedPerMin == 0 {
		c.WriteRateLimitAllowedPerMin = 60
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 7 * 24 * time.Hour
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}
