package surface

type FeatureCollection struct {
	Type     string    `json:"type"`
	Version  uint64    `json:"version"`
	View     ViewJSON  `json:"view"`
	Features []Feature `json:"features"`
}

type ViewJSON struct {
	Initialized bool        `json:"initialized"`
	Center      []float64   `json:"center,omitempty"`
	Zoom        int         `json:"zoom,omitempty"`
	Bounds      [][]float64 `json:"bounds,omitempty"`
	Padding     int         `json:"padding,omitempty"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry coordinates are [lng, lat] for a Point and a list of those for a LineString.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type Properties struct {
	ID    LayerID `json:"id"`
	Kind  string  `json:"kind"`
	Icon  Icon    `json:"icon,omitempty"`
	Popup string  `json:"popup,omitempty"`
	Color string  `json:"color,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// GeoJSON renders the current layers in insertion order.
func (m *Memory) GeoJSON() FeatureCollection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Version:  m.version,
		Features: make([]Feature, 0, len(m.order)),
		View: ViewJSON{
			Initialized: m.initialized,
		},
	}
	if m.initialized {
		fc.View.Center = []float64{m.view.Center.Lng, m.view.Center.Lat}
		fc.View.Zoom = m.view.Zoom
		fc.View.Padding = m.view.Padding
		if b := m.view.Bounds; b != nil {
			fc.View.Bounds = [][]float64{
				{b.SouthWest.Lng, b.SouthWest.Lat},
				{b.NorthEast.Lng, b.NorthEast.Lat},
			}
		}
	}

	for _, id := range m.order {
		if marker, ok := m.markers[id]; ok {
			fc.Features = append(fc.Features, Feature{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "Point",
					Coordinates: []float64{marker.Position.Lng, marker.Position.Lat},
				},
				Properties: Properties{
					ID:    id,
					Kind:  "marker",
					Icon:  marker.Icon,
					Popup: marker.Popup,
				},
			})
			continue
		}

		line := m.polylines[id]
		coords := make([][]float64, 0, len(line.Points))
		for _, p := range line.Points {
			coords = append(coords, []float64{p.Lng, p.Lat})
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
			Properties: Properties{
				ID:    id,
				Kind:  "polyline",
				Color: line.Color,
				Dash:  line.Dash,
			},
		})
	}
	return fc
}
