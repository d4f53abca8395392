package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "console/internal/app"
	"console/internal/handlers/kafka-consumer/delivery_status_changed"
	"console/internal/handlers/rest/deliveries_get"
	"console/internal/handlers/rest/delivery_assign_post"
	"console/internal/handlers/rest/delivery_delivered_post"
	"console/internal/handlers/rest/delivery_get"
	"console/internal/handlers/rest/delivery_handoff_post"
	"console/internal/handlers/rest/delivery_status_patch"
	"console/internal/handlers/rest/gps_delete"
	"console/internal/handlers/rest/gps_fill_post"
	"console/internal/handlers/rest/gps_get"
	"console/internal/handlers/rest/gps_post"
	"console/internal/handlers/rest/healthcheck_head"
	"console/internal/handlers/rest/journal_get"
	"console/internal/handlers/rest/location_post"
	"console/internal/handlers/rest/login_post"
	"console/internal/handlers/rest/logout_post"
	"console/internal/handlers/rest/map_get"
	"console/internal/handlers/rest/map_ws_get"
	"console/internal/handlers/rest/notifications_get"
	"console/internal/handlers/rest/ping_get"
	"console/internal/handlers/rest/refresh_post"
	"console/internal/handlers/rest/rider_status_patch"
	"console/internal/handlers/rest/riders_get"
	"console/internal/handlers/rest/selection_delete"
	"console/internal/handlers/rest/selection_get"
	"console/internal/handlers/rest/selection_put"
	"console/internal/handlers/rest/simulation_delete"
	"console/internal/handlers/rest/simulation_post"
	"console/internal/handlers/rest/tracking_delete"
	"console/internal/handlers/rest/tracking_put"
	"console/internal/pkg/config"
	"console/internal/pkg/dotenv"
	"console/internal/pkg/kafka"
	"console/internal/pkg/middlewares/cors"
	"console/internal/pkg/middlewares/graceful_shutdown"
	"console/internal/pkg/middlewares/metrics"
	"console/internal/pkg/middlewares/rate_limiter"
	"console/internal/pkg/middlewares/session_guard"
	"console/internal/pkg/middlewares/timeout"
	"console/internal/pkg/postgres"
	"console/internal/pkg/tracing"
	"console/migrations"
	"console/pkg/logger"
	"console/pkg/logger/zap_adapter"
	"console/pkg/token_bucket"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const guardedArea = "delivery"

func main() {
	level := os.Getenv("LOG_LEVEL")
	zapLogger, err := zap_adapter.NewZapAdapter(level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch console")

	envFiles, err := dotenv.Load()
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if len(envFiles) == 0 {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	// LOG_LEVEL мог прийти из .env
	if cfg.LogLevel != level {
		leveled, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
		if err != nil {
			mainLog.Warn("invalid LOG_LEVEL, keeping default", logger.NewField("error", err))
		} else {
			defer func() { _ = leveled.Sync() }()
			appLogger = leveled
		}
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	shutdownTracing, err := tracing.Init(ctx, log, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer tracing.Shutdown(shutdownTracing, log)

	var (
		pool         *pgxpool.Pool
		healthChecks []healthcheck_head.Check
	)
	if cfg.Database.Enabled {
		err = postgres.Migrate(ctx, log, &cfg.Database, migrations.FS, postgres.MigrateUp)
		if err != nil {
			return fmt.Errorf("journal migrations: %w", err)
		}

		pool, err = postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		healthChecks = append(healthChecks, healthcheck_head.Check{Name: "postgres", Pinger: pool})
	}

	businessApp, err := application.InitializeApplication(log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// appCtx живёт до конца run: хаб, публикация карты и фоновые задачи
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	err = businessApp.Start(appCtx)
	if err != nil {
		return fmt.Errorf("start application: %w", err)
	}
	defer businessApp.Close(context.Background())

	err = businessApp.Login(ctx, cfg.Backend.Username, cfg.Backend.Password)
	if err != nil {
		// оператор может войти вручную через /auth/login
		runLog.Warn("service account login failed", logger.NewField("error", err))
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	var consumer *kafka.Consumer
	var consumerErr chan error
	if cfg.Kafka.Enabled {
		kafkaHandler := delivery_status_changed.New(
			log,
			businessApp.Poller,
			businessApp.Tracker,
			businessApp.Session,
			cfg.Kafka.Handlers.DeliveryStatusChanged.ProcessTimeout,
		)

		consumer, err = kafka.NewConsumer(ctx, log, &cfg.Kafka, kafkaHandler)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
			}
		}()

		consumerErr = make(chan error, 1)
		go func() {
			defer close(consumerErr)

			if err := consumer.Start(ongoingCtx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
					runLog.Info("Kafka consumer stopped gracefully")
				} else {
					consumerErr <- err
				}
			}
		}()
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, healthChecks...),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	// nil каналы (pprof и kafka выключены) никогда не читаются
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	healthChecks ...healthcheck_head.Check,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, healthChecks...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, app.Auth)).Methods("GET")
	router.Handle("/auth/login", login_post.New(log, app.Auth)).Methods("POST")

	// всё остальное доступно только при активной сессии с доступом к доставке
	guarded := router.NewRoute().Subrouter()
	guarded.Use(session_guard.Middleware(log, app.Session, guardedArea))

	guarded.Handle("/auth/logout", logout_post.New(app.Auth, app.Reporter)).Methods("POST")

	guarded.Handle("/riders", riders_get.New(log, app.Poller)).Methods("GET")
	guarded.Handle("/riders/{id}/status", rider_status_patch.New(app.Delivery)).Methods("PATCH")
	guarded.Handle("/deliveries", deliveries_get.New(log, app.Poller)).Methods("GET")
	guarded.Handle("/refresh", refresh_post.New(log, app.Poller)).Methods("POST")

	guarded.Handle("/selection", selection_get.New(log, app.Delivery)).Methods("GET")
	guarded.Handle("/selection", selection_put.New(log, app.Delivery, app.Tracker)).Methods("PUT")
	guarded.Handle("/selection", selection_delete.New(app.Delivery, app.Tracker)).Methods("DELETE")

	guarded.Handle("/delivery/assign", delivery_assign_post.New(log, app.Delivery)).Methods("POST")
	guarded.Handle("/delivery/location", location_post.New(app.Delivery)).Methods("POST")
	guarded.Handle("/delivery/orders/{id}/handoff", delivery_handoff_post.New(app.Delivery)).Methods("POST")
	guarded.Handle("/delivery/{id}", delivery_get.New(log, app.Delivery)).Methods("GET")
	guarded.Handle("/delivery/{id}/status", delivery_status_patch.New(app.Delivery)).Methods("PATCH")
	guarded.Handle("/delivery/{id}/delivered", delivery_delivered_post.New(log, app.Delivery)).Methods("POST")

	guarded.Handle("/tracking/{id}", tracking_put.New(log, app.Tracker)).Methods("PUT")
	guarded.Handle("/tracking", tracking_delete.New(app.Tracker)).Methods("DELETE")
	guarded.Handle("/simulation", simulation_post.New(app.Simulator, app.Delivery, app.Renderer, app.Poller)).Methods("POST")
	guarded.Handle("/simulation", simulation_delete.New(app.Simulator)).Methods("DELETE")

	guarded.Handle("/gps", gps_post.New(app.Reporter)).Methods("POST")
	guarded.Handle("/gps", gps_get.New(app.Reporter)).Methods("GET")
	guarded.Handle("/gps", gps_delete.New(app.Reporter)).Methods("DELETE")
	guarded.Handle("/gps/fill", gps_fill_post.New(app.Reporter)).Methods("POST")

	guarded.Handle("/map", map_get.New(app.MapState)).Methods("GET")
	guarded.Handle("/map/ws", map_ws_get.New(log, app.Hub, app.MapState, cfg.CORSAllowedOrigins)).Methods("GET")
	guarded.Handle("/notifications", notifications_get.New(app.Notifier)).Methods("GET")

	if app.Journal != nil {
		guarded.Handle("/deliveries/{id}/journal", journal_get.New(log, app.Journal)).Methods("GET")
	}

	// CORS снаружи роутера: preflight OPTIONS не совпадает ни с одним маршрутом
	return cors.Middleware(cfg.CORSAllowedOrigins)(router)
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
