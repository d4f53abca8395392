package mapview

import (
	"sync"

	"console/internal/entities"
	"console/internal/pkg/geo"
	"console/internal/pkg/surface"
	"console/pkg/logger"
)

const (
	TrackColor  = "#03592e"
	RouteColor  = "#0ea5e9"
	RouteDash   = "6 4"
	FitPadding  = 20
	DefaultZoom = 13
)

var DefaultCenter = entities.Coordinate{Lat: -12.0464, Lng: -77.0428}

type Config struct {
	FallbackCenter entities.Coordinate
	Zoom           int
	SpeedMps       float64
}

// Snapshot describes what the renderer last drew for the tracked delivery.
type Snapshot struct {
	Position    *entities.Coordinate
	Destination *entities.Coordinate
	Origin      *entities.Coordinate
	TrackPoints int
	LastSeq     uint64
	ETA         *geo.Estimate
}

// Renderer draws the live track of one delivery and the planned
// origin-destination overlay. It owns its layers on the shared surface and
// never touches the layers of other components.
type Renderer struct {
	log     handlerLogger
	surface Surface
	origins OriginLookup
	tenant  TenantSource
	cfg     Config

	mu             sync.Mutex
	trackLine      surface.LayerID
	positionMarker surface.LayerID
	routeLine      surface.LayerID
	lastSeq        uint64
	position       *entities.Coordinate
	trackPoints    int
	destination    *entities.Coordinate
}

func New(log handlerLogger, surf Surface, origins OriginLookup, tenant TenantSource, cfg Config) *Renderer {
	if !cfg.FallbackCenter.Valid() || cfg.FallbackCenter == (entities.Coordinate{}) {
		cfg.FallbackCenter = DefaultCenter
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = DefaultZoom
	}
	if cfg.SpeedMps <= 0 {
		cfg.SpeedMps = geo.DefaultSpeedMps
	}

	return &Renderer{
		log:     log.With(logger.NewField("component", "mapview")),
		surface: surf,
		origins: origins,
		tenant:  tenant,
		cfg:     cfg,
	}
}

// EnsureMap initializes the surface once. center may be nil, then the
// fallback center is used.
func (r *Renderer) EnsureMap(center *entities.Coordinate) {
	c := r.cfg.FallbackCenter
	if entities.ValidPtr(center) {
		c = *center
	}
	if r.surface.Init(c, r.cfg.Zoom) {
		r.log.Debug("map initialized",
			logger.NewField("lat", c.Lat),
			logger.NewField("lng", c.Lng),
		)
	}
}

// RenderTrack replaces the track line and the position marker with the given
// track. Results tagged with a sequence number older than the last applied
// one are dropped and false is returned.
func (r *Renderer) RenderTrack(seq uint64, track entities.Track) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < r.lastSeq {
		r.log.Debug("stale track dropped",
			logger.NewField("seq", seq),
			logger.NewField("last_seq", r.lastSeq),
		)
		return false
	}
	r.lastSeq = seq

	var last *entities.Coordinate
	if p, ok := track.Last(); ok && p.Valid() {
		c := p.Coordinate
		last = &c
	}
	r.EnsureMap(last)

	points := track.Coordinates()

	r.removeLocked(&r.trackLine)
	if len(points) > 0 {
		r.trackLine = r.surface.AddPolyline(surface.Polyline{Points: points, Color: TrackColor})
		if bounds, ok := entities.BoundsOf(points); ok {
			r.surface.FitBounds(bounds, FitPadding)
		}
	}

	r.removeLocked(&r.positionMarker)
	if last != nil {
		r.positionMarker = r.surface.AddMarker(surface.Marker{Position: *last, Icon: surface.IconPosition})
	}

	r.position = last
	r.trackPoints = len(points)

	r.drawRouteLocked()
	return true
}

// SetDestination sets or clears (nil) the destination of the selected delivery.
func (r *Renderer) SetDestination(dest *entities.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entities.ValidPtr(dest) {
		c := *dest
		r.destination = &c
	} else {
		r.destination = nil
	}
	r.drawRouteLocked()
}

// RefreshRoute redraws the overlay after the tenant or the origin table changed.
func (r *Renderer) RefreshRoute() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawRouteLocked()
}

// ResetTrack removes the track layers when the tracked delivery changes.
// The sequence keeps growing so late results of the previous target are still dropped.
func (r *Renderer) ResetTrack() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(&r.trackLine)
	r.removeLocked(&r.positionMarker)
	r.position = nil
	r.trackPoints = 0
}

// Clear removes every layer the renderer owns.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(&r.trackLine)
	r.removeLocked(&r.positionMarker)
	r.removeLocked(&r.routeLine)
	r.position = nil
	r.trackPoints = 0
}

func (r *Renderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Position:    copyCoord(r.position),
		Destination: copyCoord(r.destination),
		TrackPoints: r.trackPoints,
		LastSeq:     r.lastSeq,
	}
	if origin, ok := r.originLocked(); ok {
		snap.Origin = &origin
	}
	if r.position != nil && r.destination != nil {
		eta := geo.ETA(r.position, r.destination, r.cfg.SpeedMps)
		snap.ETA = &eta
	}
	return snap
}

func (r *Renderer) drawRouteLocked() {
	origin, ok := r.originLocked()
	if !ok || r.destination == nil {
		r.removeLocked(&r.routeLine)
		return
	}

	r.EnsureMap(&origin)

	route := []entities.Coordinate{origin, *r.destination}
	r.removeLocked(&r.routeLine)
	r.routeLine = r.surface.AddPolyline(surface.Polyline{Points: route, Color: RouteColor, Dash: RouteDash})

	if r.trackLine == "" {
		if bounds, ok := entities.BoundsOf(route); ok {
			r.surface.FitBounds(bounds, FitPadding)
		}
	}
}

func (r *Renderer) originLocked() (entities.Coordinate, bool) {
	origin, ok := r.origins.Lookup(r.tenant.TenantID())
	if !ok || !origin.Valid() {
		return entities.Coordinate{}, false
	}
	return origin, true
}

func (r *Renderer) removeLocked(id *surface.LayerID) {
	if *id == "" {
		return
	}
	r.surface.RemoveLayer(*id)
	*id = ""
}

func copyCoord(c *entities.Coordinate) *entities.Coordinate {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
