package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vansan/gymtrack/internal/config"
	"github.com/vansan/gymtrack/internal/db"
	"github.com/vansan/gymtrack/internal/exercises"
	"github.com/vansan/gymtrack/internal/goals"
	"github.com/vansan/gymtrack/internal/middleware"
	"github.com/vansan/gymtrack/internal/sessions"
	"github.com/vansan/gymtrack/internal/summaries"
	"github.com/vansan/gymtrack/internal/telemetry/metrics"
	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/internal/users"
	"github.com/vansan/gymtrack/internal/weights"
	"github.com/vansan/gymtrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresUser            string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymtrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymtrack-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymtrack-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "gymtrack backend, up and running")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	limitMutations := middleware.RateLimit(
		reqRateLimiter,
		"mutations",
		s.config.MutationRateLimitAllowedPerMin,
		s.metricsManager,
	)

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo)
	r.HandleFunc("/users", usersHandler.HandleList).Methods("GET", "OPTIONS").Name("list-users")
	r.HandleFunc("/users/{id}", usersHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-user")

	exercisesCatalog := exercises.NewCatalog(exercises.NewRepo(s.dbPool))
	exercisesHandler := exercises.NewHandler(exercisesCatalog)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercises", limitMutations(http.HandlerFunc(exercisesHandler.HandleAdd))).
		Methods("POST", "OPTIONS").Name("new-exercise")

	sessionsRepo := sessions.NewRepo(s.dbPool)
	sessionsHandler := sessions.NewHandler(sessionsRepo, usersRepo, exercisesCatalog, s.metricsManager)
	r.Handle("/sessions", limitMutations(http.HandlerFunc(sessionsHandler.HandleAdd))).
		Methods("POST", "OPTIONS").Name("new-session")
	r.HandleFunc("/sessions/user/{userId}", sessionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions/{id}", sessionsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	r.Handle("/sessions/{id}", limitMutations(http.HandlerFunc(sessionsHandler.HandleUpdate))).
		Methods("PUT", "OPTIONS").Name("update-session")
	r.Handle("/sessions/{id}", limitMutations(http.HandlerFunc(sessionsHandler.HandleDelete))).
		Methods("DELETE", "OPTIONS").Name("delete-session")

	weightsRepo := weights.NewRepo(s.dbPool)
	weightsHandler := weights.NewHandler(weightsRepo, s.metricsManager)
	r.Handle("/weights", limitMutations(http.HandlerFunc(weightsHandler.HandleUpsert))).
		Methods("POST", "OPTIONS").Name("upsert-weight")
	r.HandleFunc("/weights/user/{userId}", weightsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weights")

	goalsRepo := goals.NewRepo(s.dbPool)
	goalsHandler := goals.NewHandler(goalsRepo, weightsRepo)
	r.Handle("/goals", limitMutations(http.HandlerFunc(goalsHandler.HandleAdd))).
		Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals/user/{userId}", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/user/{userId}/progress/weight", goalsHandler.HandleWeightProgress).
		Methods("GET", "OPTIONS").Name("weight-goal-progress")
	r.Handle("/goals/{id}", limitMutations(http.HandlerFunc(goalsHandler.HandleDelete))).
		Methods("DELETE", "OPTIONS").Name("delete-goal")

	summariesCache := summaries.NewCache(
		s.redisClient,
		time.Duration(s.config.SharedSummaryCacheTTLSeconds)*time.Second,
	)
	summariesService := summaries.NewService(
		summaries.NewRepo(s.dbPool),
		sessionsRepo,
		usersRepo,
		weightsRepo,
		goalsRepo,
		summariesCache,
		s.metricsManager,
	)
	summariesHandler := summaries.NewHandler(summariesService)
	r.HandleFunc("/summary/user/{userId}/weekly", summariesHandler.HandleWeekly).
		Methods("GET", "OPTIONS").Name("weekly-summary")
	r.HandleFunc("/summary/user/{userId}/monthly/{year}/{month}", summariesHandler.HandleMonthly).
		Methods("GET", "OPTIONS").Name("monthly-summary")
	r.HandleFunc("/summary/user/{userId}/annual/{year}", summariesHandler.HandleAnnual).
		Methods("GET", "OPTIONS").Name("annual-summary")
	r.HandleFunc("/summary/shared/weekly", summariesHandler.HandleSharedWeekly).
		Methods("GET", "OPTIONS").Name("shared-weekly-summary")
	r.Handle("/summary/regenerate", limitMutations(http.HandlerFunc(summariesHandler.HandleRegenerate))).
		Methods("POST", "OPTIONS").Name("regenerate-summaries")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("gymtrack service, listen and serve: %s", err)
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
