package surface

import (
	"errors"
	"fmt"
	"sync"

	"console/internal/entities"
)

var ErrLayerNotFound = errors.New("layer not found")

// Memory is a map surface kept in memory. Browsers read it as GeoJSON and
// follow changes through Subscribe.
type Memory struct {
	mu          sync.RWMutex
	nextID      uint64
	version     uint64
	initialized bool
	view        View
	markers     map[LayerID]Marker
	polylines   map[LayerID]Polyline
	order       []LayerID

	listenersMu sync.RWMutex
	listeners   map[int]func(version uint64)
	nextListen  int
}

func NewMemory() *Memory {
	return &Memory{
		markers:   make(map[LayerID]Marker),
		polylines: make(map[LayerID]Polyline),
		listeners: make(map[int]func(uint64)),
	}
}

// Init sets the initial view. It reports false when the surface was already initialized.
func (m *Memory) Init(center entities.Coordinate, zoom int) bool {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return false
	}
	m.initialized = true
	m.view = View{Center: center, Zoom: zoom}
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
	return true
}

func (m *Memory) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

func (m *Memory) AddMarker(marker Marker) LayerID {
	m.mu.Lock()
	id := m.newID("marker")
	m.markers[id] = marker
	m.order = append(m.order, id)
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
	return id
}

func (m *Memory) AddPolyline(line Polyline) LayerID {
	line.Points = clonePoints(line.Points)

	m.mu.Lock()
	id := m.newID("polyline")
	m.polylines[id] = line
	m.order = append(m.order, id)
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
	return id
}

func (m *Memory) SetMarkerPosition(id LayerID, position entities.Coordinate) error {
	m.mu.Lock()
	marker, ok := m.markers[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("marker %s: %w", id, ErrLayerNotFound)
	}
	marker.Position = position
	m.markers[id] = marker
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
	return nil
}

func (m *Memory) SetPolylinePoints(id LayerID, points []entities.Coordinate) error {
	points = clonePoints(points)

	m.mu.Lock()
	line, ok := m.polylines[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("polyline %s: %w", id, ErrLayerNotFound)
	}
	line.Points = points
	m.polylines[id] = line
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
	return nil
}

// RemoveLayer is a no-op for unknown ids.
func (m *Memory) RemoveLayer(id LayerID) {
	m.mu.Lock()
	_, isMarker := m.markers[id]
	_, isLine := m.polylines[id]
	if !isMarker && !isLine {
		m.mu.Unlock()
		return
	}
	delete(m.markers, id)
	delete(m.polylines, id)
	for i, layerID := range m.order {
		if layerID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
}

func (m *Memory) FitBounds(bounds entities.Bounds, padding int) {
	m.mu.Lock()
	b := bounds
	m.view.Bounds = &b
	m.view.Padding = padding
	m.view.Center = entities.Coordinate{
		Lat: (bounds.SouthWest.Lat + bounds.NorthEast.Lat) / 2,
		Lng: (bounds.SouthWest.Lng + bounds.NorthEast.Lng) / 2,
	}
	version := m.bump()
	m.mu.Unlock()

	m.notify(version)
}

func (m *Memory) Marker(id LayerID) (Marker, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	marker, ok := m.markers[id]
	return marker, ok
}

func (m *Memory) Polyline(id LayerID) (Polyline, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	line, ok := m.polylines[id]
	if ok {
		line.Points = clonePoints(line.Points)
	}
	return line, ok
}

func (m *Memory) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view
}

func (m *Memory) LayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

func (m *Memory) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// Subscribe registers fn to be called with the new version after every change.
// fn runs on the mutating goroutine and must not block.
func (m *Memory) Subscribe(fn func(version uint64)) (unsubscribe func()) {
	m.listenersMu.Lock()
	id := m.nextListen
	m.nextListen++
	m.listeners[id] = fn
	m.listenersMu.Unlock()

	return func() {
		m.listenersMu.Lock()
		delete(m.listeners, id)
		m.listenersMu.Unlock()
	}
}

func (m *Memory) newID(kind string) LayerID {
	m.nextID++
	return LayerID(fmt.Sprintf("%s-%d", kind, m.nextID))
}

func (m *Memory) bump() uint64 {
	m.version++
	return m.version
}

func (m *Memory) notify(version uint64) {
	m.listenersMu.RLock()
	defer m.listenersMu.RUnlock()
	for _, fn := range m.listeners {
		fn(version)
	}
}

func clonePoints(points []entities.Coordinate) []entities.Coordinate {
	if points == nil {
		return nil
	}
	out := make([]entities.Coordinate, len(points))
	copy(out, points)
	return out
}
