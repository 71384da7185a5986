package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/gymstats/analytics"
	"github.com/2beens/gymtracker/internal/gymstats/bodymetrics"
	"github.com/2beens/gymtracker/internal/gymstats/storage"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/misc"
	"github.com/2beens/gymtracker/internal/photos"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	photoStore *photos.DiskStore

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymtracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(cfg.SessionTTL.Duration, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymtracker", rdb)
	if err != nil {
		return nil, err
	}

	photoStore, err := photos.NewDiskStore(cfg.PhotosRootPath)
	if err != nil {
		return nil, fmt.Errorf("new photo store: %w", err)
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		photoStore:  photoStore,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL.Duration, rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// mirror is nil when mirroring is disabled, so saves report persisted_locally.
func (s *Server) mirror() storage.Mirror {
	if !s.config.MirrorEnabled {
		return nil
	}
	return storage.NewRedisMirror(s.redisClient)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymtracker-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	writeLimit := func(routeKey string) func(http.Handler) http.Handler {
		return middleware.RateLimit(reqRateLimiter, routeKey, s.config.WriteRateLimitAllowedPerMin, s.metricsManager)
	}
	identity := auth.ContextIdentity{}
	mirrorTimeout := s.config.MirrorTimeout.Duration

	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, writeLimit("logout"))

	workoutsStore := workouts.NewStore(workouts.NewRepo(s.dbPool), s.mirror(), mirrorTimeout)
	workoutsHandler := workouts.NewHandler(workoutsStore, identity, s.metricsManager)
	r.Handle("/workouts", writeLimit("workouts")(http.HandlerFunc(workoutsHandler.HandleSave))).Methods("POST", "OPTIONS").Name("save-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")

	bodyMetricsStore := bodymetrics.NewStore(bodymetrics.NewRepo(s.dbPool), s.mirror(), mirrorTimeout)
	bodyMetricsHandler := bodymetrics.NewHandler(bodyMetricsStore, identity, s.metricsManager)
	r.Handle("/metrics/body", writeLimit("body-metrics")(http.HandlerFunc(bodyMetricsHandler.HandleSave))).Methods("POST", "OPTIONS").Name("save-body-metric")
	r.HandleFunc("/metrics/body", bodyMetricsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-body-metrics")

	photosHandler := photos.NewHandler(s.photoStore, identity, s.metricsManager, s.config.PhotoMaxSizeBytes)
	r.Handle("/photos", writeLimit("photos")(http.HandlerFunc(photosHandler.HandleUpload))).Methods("POST", "OPTIONS").Name("upload-photo")
	r.HandleFunc("/photos/{user}/{file}", photosHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-photo")
	r.Handle("/photos/{user}/{file}", writeLimit("photos-delete")(http.HandlerFunc(photosHandler.HandleDelete))).Methods("DELETE", "OPTIONS").Name("delete-photo")

	analyticsService := analytics.NewService(
		workoutsStore,
		bodyMetricsStore,
		s.config.RecordsCacheSizeBytes,
		s.config.RecordsCacheExpiration.Duration,
		s.metricsManager,
	)
	statsHandler := analytics.NewHandler(analyticsService, identity)
	statsRouter := r.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/dashboard", statsHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("stats-dashboard")
	statsRouter.HandleFunc("/records", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("stats-records")
	statsRouter.HandleFunc("/records/recent", statsHandler.HandleRecentRecords).Methods("GET", "OPTIONS").Name("stats-records-recent")
	statsRouter.HandleFunc("/muscle-groups", statsHandler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("stats-muscle-groups")
	statsRouter.HandleFunc("/progress", statsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("stats-progress")
	statsRouter.HandleFunc("/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}", statsHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")
	statsRouter.HandleFunc("/body/trends", statsHandler.HandleBodyTrends).Methods("GET", "OPTIONS").Name("stats-body-trends")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops the servers first, then closes the clients they depend on.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
