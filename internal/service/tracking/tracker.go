package tracking

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"console/internal/entities"
	"console/pkg/background"
	"console/pkg/logger"
)

const DefaultInterval = 8 * time.Second

// Tracker follows one delivery: its track is fetched right away and then on
// every interval until the tracking id is cleared. Each fetch takes a sequence
// number so the renderer can drop results that arrive out of order.
type Tracker struct {
	log      handlerLogger
	gateway  Gateway
	renderer Renderer
	interval time.Duration
	worker   *background.Worker
	seq      atomic.Uint64

	lifecycle sync.Mutex
	running   bool

	// held from the id check to the end of a render, and while the id changes
	render sync.Mutex

	mu sync.RWMutex
	id string
	at time.Time
}

func New(log handlerLogger, gateway Gateway, renderer Renderer, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := &Tracker{
		log:      log.With(logger.NewField("service", "tracking")),
		gateway:  gateway,
		renderer: renderer,
		interval: interval,
	}
	t.worker = background.New(t.log, []background.Task{
		&refreshTask{tracker: t, interval: interval},
	})
	return t
}

// Track switches the tracked delivery to deliveryID, fetches its track once
// and makes sure the refresh loop runs. The loop is not bound to ctx
// cancellation; it ends on Clear.
func (t *Tracker) Track(ctx context.Context, deliveryID string) (entities.Track, error) {
	deliveryID = strings.TrimSpace(deliveryID)
	if deliveryID == "" {
		return entities.Track{}, ErrNotTracking
	}

	t.lifecycle.Lock()
	t.render.Lock()
	t.mu.Lock()
	prev := t.id
	t.id = deliveryID
	t.mu.Unlock()

	if prev != deliveryID {
		t.renderer.ResetTrack()
		t.log.Info("tracking delivery", logger.NewField("delivery_id", deliveryID))
	}
	t.render.Unlock()

	if !t.running {
		t.worker.Start(context.WithoutCancel(ctx))
		t.running = true
	}
	t.lifecycle.Unlock()

	return t.Refresh(ctx)
}

// Refresh fetches and renders the track of the tracked delivery. Failures are
// only logged; the next tick tries again.
func (t *Tracker) Refresh(ctx context.Context) (entities.Track, error) {
	id := t.ID()
	if id == "" {
		return entities.Track{}, ErrNotTracking
	}

	seq := t.seq.Add(1)
	track, err := t.gateway.GetTrack(ctx, id)
	if err != nil {
		TrackFetchTotal.WithLabelValues("error").Inc()
		t.log.Warn("track fetch failed",
			logger.NewField("delivery_id", id),
			logger.NewField("seq", seq),
			logger.NewField("error", err),
		)
		return entities.Track{}, err
	}

	t.render.Lock()
	defer t.render.Unlock()

	// the target changed while the request was in flight
	if t.ID() != id {
		TrackFetchTotal.WithLabelValues("discarded").Inc()
		return track, nil
	}

	if t.renderer.RenderTrack(seq, track) {
		TrackFetchTotal.WithLabelValues("ok").Inc()
		t.mu.Lock()
		t.at = time.Now()
		t.mu.Unlock()
	} else {
		TrackFetchTotal.WithLabelValues("stale").Inc()
	}
	return track, nil
}

// Clear stops the refresh loop and forgets the tracked delivery. Safe to call
// when nothing is tracked.
func (t *Tracker) Clear() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.worker.Stop()
	t.running = false

	t.render.Lock()
	defer t.render.Unlock()

	t.mu.Lock()
	id := t.id
	t.id = ""
	t.at = time.Time{}
	t.mu.Unlock()

	if id != "" {
		t.renderer.ResetTrack()
		t.log.Info("tracking cleared", logger.NewField("delivery_id", id))
	}
}

func (t *Tracker) ID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.id
}

// RenderedAt is when a track was last drawn for the current delivery.
func (t *Tracker) RenderedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.at
}
