package app

import (
	"net/http"

	"console/internal/entities"
	"console/internal/gateway/rest/backend"
	"console/internal/handlers/tasks/journal_cleanup"
	"console/internal/pkg/config"
	"console/internal/pkg/geolocation"
	"console/internal/pkg/hub"
	"console/internal/pkg/metrics"
	"console/internal/pkg/notify"
	"console/internal/pkg/origins"
	"console/internal/pkg/session"
	"console/internal/pkg/surface"
	journalRepo "console/internal/repository/journal"
	authService "console/internal/service/auth"
	deliveryService "console/internal/service/delivery"
	journalService "console/internal/service/journal"
	"console/internal/service/mapview"
	"console/internal/service/poller"
	"console/internal/service/reporter"
	"console/internal/service/simulator"
	"console/internal/service/tracking"
	"console/pkg/background"
	"console/pkg/logger"
	"console/pkg/querier"
	"console/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideSession(cfg *config.Config) *session.Session {
	return session.New(cfg.Backend.TenantID)
}

func provideNotifier() *notify.Notifier {
	return notify.New()
}

func provideHub(log logger.Logger) *hub.Hub {
	return hub.New(log)
}

func provideOrigins(log logger.Logger, cfg *config.Config) (*origins.Table, error) {
	if cfg.Origins.File == "" {
		return origins.New(log), nil
	}
	return origins.Load(log, cfg.Origins.File)
}

// timeouts are per request, set by the gateway through the context
func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideGateway(
	log logger.Logger,
	client *http.Client,
	sess *session.Session,
	cfg *config.Config,
) *backend.Gateway {
	return backend.New(log, client, sess, backend.Config{
		BaseURL:         cfg.Backend.BaseURL,
		TenantQuery:     cfg.Backend.TenantQuery,
		RetryMaxElapsed: cfg.Backend.RetryMaxElapsed,
	})
}

func provideAuth(
	log logger.Logger,
	gateway authService.Gateway,
	sess authService.Session,
	notifier *notify.Notifier,
) *authService.Auth {
	return authService.New(log, gateway, sess, notifier)
}

func providePoller(
	log logger.Logger,
	gateway poller.Gateway,
	notifier *notify.Notifier,
	cfg *config.Config,
) *poller.Poller {
	return poller.New(log, gateway, notifier, poller.Config{
		Interval:   cfg.Poller.Interval,
		FilterMode: cfg.Poller.DeliveryFilter,
		Status:     entities.DeliveryStatus(cfg.Poller.DeliveryStatus),
	})
}

func provideRenderer(
	log logger.Logger,
	surf *surface.Memory,
	table *origins.Table,
	sess *session.Session,
	cfg *config.Config,
) *mapview.Renderer {
	return mapview.New(log, surf, table, sess, mapview.Config{
		FallbackCenter: entities.Coordinate{Lat: cfg.Map.FallbackLat, Lng: cfg.Map.FallbackLng},
		Zoom:           cfg.Map.Zoom,
		SpeedMps:       cfg.Map.SpeedMps,
	})
}

func provideTracker(
	log logger.Logger,
	gateway tracking.Gateway,
	renderer tracking.Renderer,
	cfg *config.Config,
) *tracking.Tracker {
	return tracking.New(log, gateway, renderer, cfg.Tracking.Interval)
}

func provideServiceDelivery(
	log logger.Logger,
	gateway deliveryService.Gateway,
	live deliveryService.LiveData,
	destination deliveryService.DestinationSetter,
	notifier *notify.Notifier,
	recorder deliveryService.Recorder,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		gateway,
		live,
		destination,
		notifier,
		recorder,
	)
}

func provideSimulator(
	log logger.Logger,
	surf *surface.Memory,
	notifier *notify.Notifier,
	recorder simulator.Recorder,
	cfg *config.Config,
) *simulator.Simulator {
	return simulator.New(log, surf, notifier, recorder, simulator.Config{
		Steps:     cfg.Simulator.Steps,
		Tick:      cfg.Simulator.Tick,
		Amplitude: cfg.Simulator.Amplitude,
		Zoom:      cfg.Map.Zoom,
	})
}

// provideLocator picks gpsd when an address is configured. Without one the
// console has no device position source.
func provideLocator(log logger.Logger, cfg *config.Config) reporter.Locator {
	if cfg.Geolocation.GPSDAddr == "" {
		return geolocation.Unavailable{}
	}
	return geolocation.NewGPSD(log, cfg.Geolocation.GPSDAddr)
}

func provideReporter(
	log logger.Logger,
	locator reporter.Locator,
	gateway reporter.Gateway,
	notifier *notify.Notifier,
	recorder reporter.Recorder,
	cfg *config.Config,
) *reporter.Reporter {
	return reporter.New(log, locator, gateway, notifier, recorder, reporter.Config{
		PushTimeout: cfg.Reporter.PushTimeout,
		Options: geolocation.Options{
			HighAccuracy: cfg.Reporter.HighAccuracy,
			Timeout:      cfg.Reporter.Timeout,
			MaxAge:       cfg.Reporter.MaxAge,
		},
	})
}

// Журнал только вставляет и чистит по времени, Serializable ему не нужен.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideJournalRepository(querier *querier.Querier) *journalRepo.Repository {
	return journalRepo.New(querier)
}

// provideServiceJournal returns nil when the journal is disabled. The
// recorders below turn that into untyped nil interfaces.
func provideServiceJournal(
	pool *pgxpool.Pool,
	repository journalService.Repository,
	txManager journalService.TxManager,
	cfg *config.Config,
) *journalService.Journal {
	if !cfg.Database.Enabled || pool == nil {
		return nil
	}
	return journalService.New(repository, txManager, cfg.Journal.Retention)
}

func provideDeliveryRecorder(journal *journalService.Journal) deliveryService.Recorder {
	if journal == nil {
		return nil
	}
	return journal
}

func provideSimulationRecorder(journal *journalService.Journal) simulator.Recorder {
	if journal == nil {
		return nil
	}
	return journal
}

func provideLocationRecorder(journal *journalService.Journal) reporter.Recorder {
	if journal == nil {
		return nil
	}
	return journal
}

func provideSystemCollector(hub *hub.Hub, cfg *config.Config) *metrics.SystemCollector {
	return metrics.NewSystemCollector(cfg.Metrics.SystemInterval, hub)
}

func provideJournalCleanupTask(
	log logger.Logger,
	journal *journalService.Journal,
	cfg *config.Config,
) *journal_cleanup.JournalCleanup {
	if journal == nil {
		return nil
	}
	return journal_cleanup.NewJournalCleanup(log, journal, cfg.Journal.CleanupInterval)
}

func provideTaskList(
	systemCollector *metrics.SystemCollector,
	journalCleanupTask *journal_cleanup.JournalCleanup,
) []background.Task {
	tasks := []background.Task{
		systemCollector,
	}
	if journalCleanupTask != nil {
		tasks = append(tasks, journalCleanupTask)
	}
	return tasks
}

func provideBackgroundWorkers(log logger.Logger, tasks []background.Task) *background.Worker {
	return background.New(log, tasks)
}
