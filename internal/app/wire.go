//go:build wireinject
// +build wireinject

package app

import (
	"console/internal/gateway/rest/backend"
	"console/internal/handlers/rest/mapstate"
	"console/internal/pkg/config"
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
	"console/pkg/logger"
	"console/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/console). pool равен nil, когда журнал выключен.
func InitializeApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideSession,
		provideNotifier,
		surface.NewMemory,
		provideHub,
		provideOrigins,
		provideHTTPClient,
		provideGateway,

		provideAuth,
		providePoller,
		provideRenderer,
		provideTracker,
		provideServiceDelivery,
		provideSimulator,
		provideLocator,
		provideReporter,
		mapstate.New,

		provideTxManager,
		provideQuerier,
		provideJournalRepository,
		provideServiceJournal,
		provideDeliveryRecorder,
		provideSimulationRecorder,
		provideLocationRecorder,

		provideSystemCollector,
		provideJournalCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(authService.Gateway), new(*backend.Gateway)),
		wire.Bind(new(authService.Session), new(*session.Session)),
		wire.Bind(new(poller.Gateway), new(*backend.Gateway)),
		wire.Bind(new(tracking.Gateway), new(*backend.Gateway)),
		wire.Bind(new(tracking.Renderer), new(*mapview.Renderer)),
		wire.Bind(new(deliveryService.Gateway), new(*backend.Gateway)),
		wire.Bind(new(deliveryService.LiveData), new(*poller.Poller)),
		wire.Bind(new(deliveryService.DestinationSetter), new(*mapview.Renderer)),
		wire.Bind(new(reporter.Gateway), new(*backend.Gateway)),

		wire.Bind(new(mapstate.Surface), new(*surface.Memory)),
		wire.Bind(new(mapstate.Renderer), new(*mapview.Renderer)),
		wire.Bind(new(mapstate.Tracker), new(*tracking.Tracker)),
		wire.Bind(new(mapstate.Simulator), new(*simulator.Simulator)),

		wire.Bind(new(journalService.Repository), new(*journalRepo.Repository)),
		wire.Bind(new(journalService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}
