package app

import (
	"context"
	"errors"
	"sync"

	"console/internal/entities"
	"console/internal/gateway/rest/backend"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/mapstate"
	"console/internal/pkg/hub"
	"console/internal/pkg/notify"
	"console/internal/pkg/origins"
	"console/internal/pkg/session"
	"console/internal/pkg/surface"
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
)

// websocket event types
const (
	EventMap          = "map"
	EventNotification = "notification"
	EventLive         = "live"
)

type Application struct {
	Log               logger.Logger
	Session           *session.Session
	Notifier          *notify.Notifier
	Surface           *surface.Memory
	Hub               *hub.Hub
	Origins           *origins.Table
	Gateway           *backend.Gateway
	Auth              *authService.Auth
	Poller            *poller.Poller
	Renderer          *mapview.Renderer
	Tracker           *tracking.Tracker
	Delivery          *deliveryService.Delivery
	Simulator         *simulator.Simulator
	Reporter          *reporter.Reporter
	MapState          *mapstate.Source
	Journal           *journalService.Journal // nil when the journal is disabled
	BackgroundWorkers *background.Worker

	lifecycle sync.Mutex `wire:"-"`
}

// LiveEvent is pushed to websocket clients whenever a poller list changes.
type LiveEvent struct {
	Riders     []dto.Rider    `json:"riders"`
	Deliveries []dto.Delivery `json:"deliveries"`
}

// Start connects the components to each other and launches the long-lived
// loops: the websocket hub, the map publisher and the background tasks.
// Everything runs until ctx is done or Close is called.
func (a *Application) Start(ctx context.Context) error {
	log := a.Log.With(logger.NewField("component", "app"))

	a.Notifier.AddSink(func(n notify.Notification) {
		a.Hub.Broadcast(EventNotification, n)
	})

	a.Session.OnCleared(a.Auth.SessionCleared)
	a.Session.OnCleared(func(reason session.ClearReason) {
		// the clear may come from inside a poller or tracker fetch, waiting
		// for their loops here would deadlock
		go a.syncWithSession(context.WithoutCancel(ctx))
	})
	a.Session.OnActivated(func(user entities.StaffUser) {
		log.Info("session activated, starting live data",
			logger.NewField("user_id", user.ID),
			logger.NewField("tenant_id", a.Session.TenantID()),
		)
		go a.syncWithSession(context.WithoutCancel(ctx))
	})

	a.Poller.OnChange(func() {
		a.Hub.Broadcast(EventLive, LiveEvent{
			Riders:     dto.RidersFromEntities(a.Poller.RiderViews("")),
			Deliveries: dto.DeliveriesFromEntities(a.Poller.Actives()),
		})
	})
	a.Origins.OnChange(a.Renderer.RefreshRoute)

	mapChanged := make(chan struct{}, 1)
	a.Surface.Subscribe(func(uint64) {
		select {
		case mapChanged <- struct{}{}:
		default:
		}
	})

	go a.Hub.Run(ctx)
	go a.publishMap(ctx, mapChanged)

	err := a.BackgroundWorkers.Warmup(ctx)
	if err != nil {
		return err
	}
	a.BackgroundWorkers.Start(ctx)
	return nil
}

// publishMap sends the map state after surface changes. Bursts of changes
// collapse into one event. Building the payload locks the renderer, which may
// itself be mutating the surface, so it never happens on the surface callback.
func (a *Application) publishMap(ctx context.Context, changed <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			a.Hub.Broadcast(EventMap, a.MapState.Build())
		}
	}
}

// Login signs the configured service account in, when one is set.
func (a *Application) Login(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	_, err := a.Auth.Login(ctx, authService.Credentials{
		Username: username,
		Password: password,
		TenantID: a.Session.TenantID(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// syncWithSession starts or stops the operator's activities to match the
// session as it is now, not as it was when the event fired. Runs are
// serialized, so the last one always sees the latest session state.
func (a *Application) syncWithSession(ctx context.Context) {
	a.lifecycle.Lock()
	defer a.lifecycle.Unlock()

	if _, active := a.Session.User(); active {
		a.Poller.Start(ctx)
		return
	}
	a.stopOperatorActivities(ctx)
}

func (a *Application) stopOperatorActivities(ctx context.Context) {
	a.Reporter.Stop()
	a.Simulator.Stop(ctx)
	a.Tracker.Clear()
	a.Poller.Stop()
	a.Delivery.ClearSelection()
}

// Close stops every loop the application owns. The hub stops with the ctx
// given to Start.
func (a *Application) Close(ctx context.Context) {
	a.Reporter.Stop()
	a.Simulator.Clear(ctx)
	a.Tracker.Clear()
	a.Poller.Stop()
	a.BackgroundWorkers.Stop()
}
