package simulator

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"console/internal/entities"
	"console/internal/pkg/surface"
	"console/pkg/logger"

	"github.com/google/uuid"
)

const (
	DefaultTick = 200 * time.Millisecond

	RouteColor = "#0ea5e9"
	RouteDash  = "6 4"
	TrailColor = "#16a34a"

	routePadding  = 50
	defaultZoom   = 13
	recordTimeout = 5 * time.Second
)

const (
	msgMissingEndpoints = "Selecciona un delivery con dirección primero"
	msgStarted          = "Simulación de ruta iniciada"
	msgArrived          = "Delivery llegó al destino"
	msgStopped          = "Simulación detenida"
)

type Config struct {
	Steps     int
	Tick      time.Duration
	Amplitude float64
	Zoom      int
	// Rand returns values in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
}

type layers struct {
	route       surface.LayerID
	origin      surface.LayerID
	destination surface.LayerID
	trail       surface.LayerID
	courier     surface.LayerID
}

func (l layers) all() []surface.LayerID {
	return []surface.LayerID{l.route, l.origin, l.destination, l.trail, l.courier}
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
	points []entities.Coordinate
	index  int
	record entities.SimulationRun
}

// Simulator animates a courier marker along a synthetic route from the store
// to the selected destination. Only one run is active at a time.
type Simulator struct {
	log      handlerLogger
	surface  Surface
	notifier Notifier
	recorder Recorder
	cfg      Config

	lifecycle sync.Mutex

	mu         sync.Mutex
	current    *run
	layers     layers
	simulating bool
	progress   int
}

// New builds a simulator. recorder may be nil when the journal is disabled.
func New(log handlerLogger, surf Surface, notifier Notifier, recorder Recorder, cfg Config) *Simulator {
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultSteps
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.Amplitude <= 0 {
		cfg.Amplitude = DefaultAmplitude
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = defaultZoom
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Float64
	}

	return &Simulator{
		log:      log.With(logger.NewField("component", "simulator")),
		surface:  surf,
		notifier: notifier,
		recorder: recorder,
		cfg:      cfg,
	}
}

// Start draws the planned route and begins moving the courier marker one
// point per tick. A running simulation is stopped first. The run outlives
// ctx cancellation and ends on arrival or Stop.
func (s *Simulator) Start(ctx context.Context, deliveryID string, origin, dest *entities.Coordinate) error {
	if !entities.ValidPtr(origin) || !entities.ValidPtr(dest) {
		s.notifier.Warn(msgMissingEndpoints)
		return ErrMissingEndpoints
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.halt(ctx)

	points := generateRoutePoints(*origin, *dest, s.cfg.Steps, s.cfg.Amplitude, s.cfg.Rand)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r := &run{
		cancel: cancel,
		done:   make(chan struct{}),
		points: points,
		record: entities.SimulationRun{
			ID:          uuid.NewString(),
			DeliveryID:  deliveryID,
			Origin:      *origin,
			Destination: *dest,
			Points:      len(points),
			StartedAt:   time.Now(),
		},
	}

	s.mu.Lock()
	s.removeLayersLocked()
	s.surface.Init(*origin, s.cfg.Zoom)

	s.layers.route = s.surface.AddPolyline(surface.Polyline{Points: points, Color: RouteColor, Dash: RouteDash})
	if bounds, ok := entities.BoundsOf(points); ok {
		s.surface.FitBounds(bounds, routePadding)
	}
	s.layers.destination = s.surface.AddMarker(surface.Marker{Position: *dest, Icon: surface.IconDestination, Popup: "Destino"})
	s.layers.origin = s.surface.AddMarker(surface.Marker{Position: *origin, Icon: surface.IconOrigin, Popup: "Local"})
	s.layers.trail = s.surface.AddPolyline(surface.Polyline{Points: points[:1], Color: TrailColor})
	s.layers.courier = s.surface.AddMarker(surface.Marker{Position: points[0], Icon: surface.IconCourier, Popup: "Delivery en camino"})

	s.current = r
	s.simulating = true
	s.progress = 0
	s.mu.Unlock()

	s.log.Info("simulation started",
		logger.NewField("run_id", r.record.ID),
		logger.NewField("delivery_id", deliveryID),
		logger.NewField("points", len(points)),
	)
	s.notifier.Success(msgStarted)

	go s.loop(runCtx, r)
	return nil
}

// Stop cancels the running simulation and leaves the courier marker where it
// is. Safe to call when nothing runs.
func (s *Simulator) Stop(ctx context.Context) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.halt(ctx) {
		s.notifier.Info(msgStopped)
	}
}

// Clear stops the simulation and removes its layers.
func (s *Simulator) Clear(ctx context.Context) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.halt(ctx)

	s.mu.Lock()
	s.removeLayersLocked()
	s.progress = 0
	s.mu.Unlock()
}

func (s *Simulator) Simulating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simulating
}

// Progress is the share of the route covered, 0 to 100.
func (s *Simulator) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// halt stops the current run and waits for its goroutine. It reports whether
// a run was active. The caller holds the lifecycle lock.
func (s *Simulator) halt(ctx context.Context) bool {
	s.mu.Lock()
	r := s.current
	s.current = nil
	s.simulating = false
	s.mu.Unlock()

	if r == nil {
		return false
	}

	r.cancel()
	<-r.done

	s.finish(ctx, r, entities.OutcomeStopped)
	return true
}

func (s *Simulator) loop(ctx context.Context, r *run) {
	defer close(r.done)

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			arrived, ok := s.advance(r)
			if !ok {
				return
			}
			if arrived {
				s.arrive(ctx, r)
				return
			}
		}
	}
}

// advance moves the courier one point forward. ok is false when r is no
// longer the current run.
func (s *Simulator) advance(r *run) (arrived, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != r {
		return false, false
	}

	last := len(r.points) - 1
	if r.index < last {
		r.index++
	}
	point := r.points[r.index]

	if err := s.surface.SetMarkerPosition(s.layers.courier, point); err != nil {
		s.log.Warn("courier marker missing", logger.NewField("error", err))
	}
	if err := s.surface.SetPolylinePoints(s.layers.trail, r.points[:r.index+1]); err != nil {
		s.log.Warn("trail line missing", logger.NewField("error", err))
	}

	s.progress = int(math.Round(float64(r.index) / float64(last) * 100))
	return r.index >= last, true
}

func (s *Simulator) arrive(ctx context.Context, r *run) {
	s.mu.Lock()
	if s.current != r {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.simulating = false
	s.progress = 100
	s.mu.Unlock()

	s.notifier.Success(msgArrived)
	s.finish(ctx, r, entities.OutcomeArrived)
}

func (s *Simulator) finish(ctx context.Context, r *run, outcome entities.SimulationOutcome) {
	SimulationRunsTotal.WithLabelValues(string(outcome)).Inc()

	r.record.Outcome = outcome
	r.record.FinishedAt = time.Now()

	s.log.Info("simulation finished",
		logger.NewField("run_id", r.record.ID),
		logger.NewField("outcome", string(outcome)),
		logger.NewField("index", r.index),
	)

	if s.recorder == nil {
		return
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.recorder.RecordSimulation(recordCtx, r.record); err != nil {
		s.log.Warn("simulation run not recorded",
			logger.NewField("run_id", r.record.ID),
			logger.NewField("error", err),
		)
	}
}

func (s *Simulator) removeLayersLocked() {
	for _, id := range s.layers.all() {
		if id != "" {
			s.surface.RemoveLayer(id)
		}
	}
	s.layers = layers{}
}
