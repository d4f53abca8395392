package reporter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"console/internal/entities"
	"console/internal/pkg/geolocation"
	"console/pkg/logger"
)

const (
	DefaultPushTimeout = 5 * time.Second

	recordTimeout = 5 * time.Second
)

const (
	msgMissingDeliveryID = "Ingresa un ID de delivery primero"
	msgUnsupported       = "Geolocalización no soportada"
	msgStarted           = "Tracking GPS activado"
	msgStopped           = "Tracking GPS desactivado"
	msgWatchFailed       = "Error en tracking GPS"
	msgPositionObtained  = "Ubicación obtenida"
	msgPositionFailed    = "No se pudo obtener la ubicación. Verifica los permisos."
)

type Config struct {
	PushTimeout time.Duration
	Options     geolocation.Options
}

// Fields are the coordinates shown in the manual location form, six decimals.
type Fields struct {
	Lat string
	Lng string
}

func FieldsOf(c entities.Coordinate) Fields {
	return Fields{
		Lat: strconv.FormatFloat(c.Lat, 'f', 6, 64),
		Lng: strconv.FormatFloat(c.Lng, 'f', 6, 64),
	}
}

// Reporter streams device positions to the backend for one delivery.
// At most one watch is active; every Start bumps the generation so late
// updates of a replaced or stopped watch are ignored.
type Reporter struct {
	log      handlerLogger
	locator  Locator
	gateway  Gateway
	notifier Notifier
	recorder Recorder
	cfg      Config

	lifecycle sync.Mutex
	pushes    sync.WaitGroup

	mu         sync.Mutex
	watch      geolocation.Watch
	generation uint64
	deliveryID string
	baseCtx    context.Context
	fields     Fields
	last       *geolocation.Position
}

// New builds a reporter. recorder may be nil when the journal is disabled.
func New(log handlerLogger, locator Locator, gateway Gateway, notifier Notifier, recorder Recorder, cfg Config) *Reporter {
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = DefaultPushTimeout
	}

	return &Reporter{
		log:      log.With(logger.NewField("service", "reporter")),
		locator:  locator,
		gateway:  gateway,
		notifier: notifier,
		recorder: recorder,
		cfg:      cfg,
	}
}

// Start subscribes to device positions and pushes each one for deliveryID.
// A running watch is stopped first. The subscription is not bound to ctx
// cancellation; it ends on Stop or on a watch error.
func (r *Reporter) Start(ctx context.Context, deliveryID string) error {
	deliveryID = strings.TrimSpace(deliveryID)
	if deliveryID == "" {
		r.notifier.Warn(msgMissingDeliveryID)
		return ErrMissingDeliveryID
	}
	if !r.locator.Available() {
		r.notifier.Error(msgUnsupported)
		return ErrGeolocationUnavailable
	}

	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	r.clear()

	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.deliveryID = deliveryID
	r.baseCtx = context.WithoutCancel(ctx)
	r.mu.Unlock()

	watch, err := r.locator.Watch(r.cfg.Options,
		func(pos geolocation.Position) { r.onUpdate(gen, pos) },
		func(err error) { r.onError(gen, err) },
	)
	if err != nil {
		r.mu.Lock()
		r.deliveryID = ""
		r.mu.Unlock()

		r.notifier.Error(msgWatchFailed)
		if errors.Is(err, geolocation.ErrUnavailable) {
			return ErrGeolocationUnavailable
		}
		return fmt.Errorf("watch position: %w", err)
	}

	r.mu.Lock()
	if r.generation != gen {
		// the watch failed before we stored it
		r.mu.Unlock()
		watch.Clear()
		return nil
	}
	r.watch = watch
	r.mu.Unlock()

	r.log.Info("gps reporting started", logger.NewField("delivery_id", deliveryID))
	r.notifier.Success(msgStarted)
	return nil
}

// Stop clears the watch and waits for in-flight pushes. Safe when not started.
func (r *Reporter) Stop() {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	if r.clear() {
		r.notifier.Info(msgStopped)
	}
	r.pushes.Wait()
}

func (r *Reporter) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watch != nil
}

func (r *Reporter) DeliveryID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deliveryID
}

func (r *Reporter) Fields() Fields {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fields
}

// LastPosition is the newest device fix seen by the running or last watch.
func (r *Reporter) LastPosition() (geolocation.Position, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return geolocation.Position{}, false
	}
	return *r.last, true
}

// FillFromDevice reads the device position once and fills the form fields
// with it. Nothing is sent to the backend.
func (r *Reporter) FillFromDevice(ctx context.Context) (Fields, error) {
	if !r.locator.Available() {
		r.notifier.Error(msgUnsupported)
		return Fields{}, ErrGeolocationUnavailable
	}

	pos, err := r.locator.CurrentPosition(ctx, r.cfg.Options)
	if err != nil {
		r.log.Warn("device position failed", logger.NewField("error", err))
		r.notifier.Error(msgPositionFailed)
		return Fields{}, fmt.Errorf("current position: %w", err)
	}

	fields := FieldsOf(pos.Coordinate)

	r.mu.Lock()
	r.fields = fields
	r.last = &pos
	r.mu.Unlock()

	r.notifier.Success(msgPositionObtained)
	return fields, nil
}

// clear drops the current watch and reports whether one was active.
func (r *Reporter) clear() bool {
	r.mu.Lock()
	watch := r.watch
	r.watch = nil
	r.generation++
	r.mu.Unlock()

	if watch == nil {
		return false
	}
	watch.Clear()
	r.log.Info("gps reporting stopped")
	return true
}

func (r *Reporter) onUpdate(gen uint64, pos geolocation.Position) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		GPSPushTotal.WithLabelValues("dropped").Inc()
		return
	}
	r.fields = FieldsOf(pos.Coordinate)
	p := pos
	r.last = &p
	deliveryID := r.deliveryID
	ctx := r.baseCtx
	r.pushes.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.pushes.Done()
		r.push(ctx, deliveryID, pos)
	}()
}

func (r *Reporter) push(ctx context.Context, deliveryID string, pos geolocation.Position) {
	err := r.gateway.PushLocation(ctx, deliveryID, pos.Coordinate, r.cfg.PushTimeout)
	if err != nil {
		GPSPushTotal.WithLabelValues("error").Inc()
		r.log.Warn("gps push failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", err),
		)
	} else {
		GPSPushTotal.WithLabelValues("ok").Inc()
		r.log.Debug("gps position pushed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("lat", pos.Coordinate.Lat),
			logger.NewField("lng", pos.Coordinate.Lng),
		)
	}

	if r.recorder == nil {
		return
	}

	recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	at := pos.At
	if at.IsZero() {
		at = time.Now()
	}
	sample := entities.LocationSample{
		DeliveryID: deliveryID,
		Coordinate: pos.Coordinate,
		Accuracy:   pos.Accuracy,
		Source:     entities.SourceDevice,
		Delivered:  err == nil,
		At:         at,
	}
	if recErr := r.recorder.RecordLocation(recordCtx, sample); recErr != nil {
		r.log.Warn("location sample not recorded", logger.NewField("error", recErr))
	}
}

func (r *Reporter) onError(gen uint64, err error) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}
	watch := r.watch
	r.watch = nil
	r.generation++
	r.mu.Unlock()

	r.log.Warn("gps watch failed", logger.NewField("error", err))
	r.notifier.Error(msgWatchFailed)

	if watch != nil {
		watch.Clear()
	}
}
