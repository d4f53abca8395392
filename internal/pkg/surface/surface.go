package surface

import "console/internal/entities"

type LayerID string

type Icon string

const (
	IconPosition    Icon = "position"
	IconCourier     Icon = "courier"
	IconOrigin      Icon = "origin"
	IconDestination Icon = "destination"
)

// Marker is a point layer. Popup is shown when the marker is clicked.
type Marker struct {
	Position entities.Coordinate
	Icon     Icon
	Popup    string
}

// Polyline is a line layer. Dash follows the SVG dash-array syntax, "" is solid.
type Polyline struct {
	Points []entities.Coordinate
	Color  string
	Dash   string
}

type View struct {
	Center  entities.Coordinate
	Zoom    int
	Bounds  *entities.Bounds
	Padding int
}
