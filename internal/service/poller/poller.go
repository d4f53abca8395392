package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"console/internal/entities"
	"console/internal/pkg/config"
	"console/pkg/background"
	"console/pkg/logger"
)

const (
	listRiders  = "riders"
	listActives = "actives"

	msgRidersFailed  = "Error al cargar repartidores"
	msgActivesFailed = "Error al cargar entregas activas"
)

type Config struct {
	Interval time.Duration
	// config.DeliveryFilterExcludeTerminal or config.DeliveryFilterStatus
	FilterMode string
	Status     entities.DeliveryStatus
}

type Snapshot struct {
	Riders         []entities.Rider
	Actives        []entities.Delivery
	RidersLoading  bool
	ActivesLoading bool
	LoadingAll     bool
	RidersAt       time.Time
	ActivesAt      time.Time
}

// Poller keeps the rider list and the active deliveries fresh. Each list has
// its own loop; a failed fetch empties that list and the loop carries on.
type Poller struct {
	log      handlerLogger
	gateway  Gateway
	notifier Notifier
	cfg      Config
	worker   *background.Worker
	now      func() time.Time

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	running   bool

	mu             sync.RWMutex
	riders         []entities.Rider
	actives        []entities.Delivery
	ridersLoading  int
	activesLoading int
	loadingAll     int
	ridersAt       time.Time
	activesAt      time.Time

	listenersMu sync.RWMutex
	listeners   []func()
}

func New(log handlerLogger, gateway Gateway, notifier Notifier, cfg Config) *Poller {
	p := &Poller{
		log:      log.With(logger.NewField("service", "poller")),
		gateway:  gateway,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		riders:   []entities.Rider{},
		actives:  []entities.Delivery{},
	}

	p.worker = background.New(p.log, []background.Task{
		&ridersTask{poller: p, interval: cfg.Interval},
		&activesTask{poller: p, interval: cfg.Interval},
	})
	return p
}

// Start loads both lists concurrently and returns when the initial load is
// done, then keeps refreshing every Interval. With Interval <= 0 only the
// initial load happens. Starting a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.lifecycle.Lock()
	if p.running {
		p.lifecycle.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.running = true
	p.lifecycle.Unlock()

	p.beginLoadingAll()
	// tasks swallow their errors, warmup cannot fail
	_ = p.worker.Warmup(runCtx)
	p.endLoadingAll()

	if p.cfg.Interval <= 0 {
		p.log.Info("polling disabled, initial load only")
		return
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if runCtx.Err() != nil {
		return
	}
	p.worker.Start(runCtx)
}

func (p *Poller) Running() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	return p.running
}

// Stop cancels both loops and waits for them. No fetch starts after Stop returns.
func (p *Poller) Stop() {
	p.lifecycle.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.running = false
	p.lifecycle.Unlock()

	if cancel != nil {
		cancel()
	}
	p.worker.Stop()
}

func (p *Poller) ReloadRiders(ctx context.Context) error {
	p.setLoading(&p.ridersLoading, 1)
	defer p.setLoading(&p.ridersLoading, -1)

	riders, err := p.gateway.ListRiders(ctx)
	if err != nil {
		return p.fetchFailed(ctx, listRiders, msgRidersFailed, err, func() {
			p.riders = []entities.Rider{}
		})
	}

	p.mu.Lock()
	p.riders = riders
	p.ridersAt = p.now()
	p.mu.Unlock()

	PollerFetchTotal.WithLabelValues(listRiders, "ok").Inc()
	PollerListSize.WithLabelValues(listRiders).Set(float64(len(riders)))
	p.changed()
	return nil
}

func (p *Poller) ReloadActives(ctx context.Context) error {
	p.setLoading(&p.activesLoading, 1)
	defer p.setLoading(&p.activesLoading, -1)

	actives, err := p.fetchActives(ctx)
	if err != nil {
		return p.fetchFailed(ctx, listActives, msgActivesFailed, err, func() {
			p.actives = []entities.Delivery{}
		})
	}

	p.mu.Lock()
	p.actives = actives
	p.activesAt = p.now()
	p.mu.Unlock()

	PollerFetchTotal.WithLabelValues(listActives, "ok").Inc()
	PollerListSize.WithLabelValues(listActives).Set(float64(len(actives)))
	p.changed()
	return nil
}

// ReloadAll refreshes both lists concurrently and returns the joined errors.
func (p *Poller) ReloadAll(ctx context.Context) error {
	p.beginLoadingAll()
	defer p.endLoadingAll()

	var wg sync.WaitGroup
	var ridersErr, activesErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		ridersErr = p.ReloadRiders(ctx)
	}()
	go func() {
		defer wg.Done()
		activesErr = p.ReloadActives(ctx)
	}()
	wg.Wait()

	return errors.Join(ridersErr, activesErr)
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	riders := make([]entities.Rider, len(p.riders))
	copy(riders, p.riders)
	actives := make([]entities.Delivery, len(p.actives))
	copy(actives, p.actives)

	return Snapshot{
		Riders:         riders,
		Actives:        actives,
		RidersLoading:  p.ridersLoading > 0,
		ActivesLoading: p.activesLoading > 0,
		LoadingAll:     p.loadingAll > 0,
		RidersAt:       p.ridersAt,
		ActivesAt:      p.activesAt,
	}
}

// RiderViews returns riders matching filter with availability derived from the actives.
func (p *Poller) RiderViews(filter string) []entities.RiderView {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matching := make([]entities.Rider, 0, len(p.riders))
	for _, r := range p.riders {
		if r.Matches(filter) {
			matching = append(matching, r)
		}
	}
	return entities.RiderViews(matching, p.actives)
}

func (p *Poller) Rider(riderID string) (entities.RiderView, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, r := range p.riders {
		if r.ID == riderID {
			return entities.RiderView{Rider: r, Available: entities.IsRiderAvailable(r.ID, p.actives)}, true
		}
	}
	return entities.RiderView{}, false
}

func (p *Poller) Actives() []entities.Delivery {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]entities.Delivery, len(p.actives))
	copy(out, p.actives)
	return out
}

func (p *Poller) Delivery(deliveryID string) (entities.Delivery, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, d := range p.actives {
		if d.ID == deliveryID {
			return d, true
		}
	}
	return entities.Delivery{}, false
}

func (p *Poller) ReadyToAssign() []entities.Delivery {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return entities.ReadyToAssign(p.actives)
}

// OnChange registers fn to run after a list was replaced.
func (p *Poller) OnChange(fn func()) {
	p.listenersMu.Lock()
	defer p.listenersMu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Poller) fetchActives(ctx context.Context) ([]entities.Delivery, error) {
	if p.cfg.FilterMode == config.DeliveryFilterStatus {
		return p.gateway.ListDeliveries(ctx, p.cfg.Status)
	}

	all, err := p.gateway.ListDeliveries(ctx, "")
	if err != nil {
		return nil, err
	}

	actives := make([]entities.Delivery, 0, len(all))
	for _, d := range all {
		if d.Status.IsActive() {
			actives = append(actives, d)
		}
	}
	return actives, nil
}

// fetchFailed applies the failure policy. A fetch cut short by cancellation
// leaves the list untouched and stays silent.
func (p *Poller) fetchFailed(ctx context.Context, list, message string, err error, reset func()) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		PollerFetchTotal.WithLabelValues(list, "canceled").Inc()
		return fmt.Errorf("reload %s: %w", list, err)
	}

	p.log.Error("live data fetch failed",
		logger.NewField("list", list),
		logger.NewField("error", err),
	)
	PollerFetchTotal.WithLabelValues(list, "error").Inc()

	p.mu.Lock()
	reset()
	p.mu.Unlock()

	p.changed()
	p.notifier.Warn(message)
	return fmt.Errorf("reload %s: %w", list, err)
}

func (p *Poller) setLoading(counter *int, delta int) {
	p.mu.Lock()
	*counter += delta
	p.mu.Unlock()
}

func (p *Poller) beginLoadingAll() { p.setLoading(&p.loadingAll, 1) }
func (p *Poller) endLoadingAll()   { p.setLoading(&p.loadingAll, -1) }

func (p *Poller) changed() {
	p.listenersMu.RLock()
	defer p.listenersMu.RUnlock()
	for _, fn := range p.listeners {
		fn()
	}
}
