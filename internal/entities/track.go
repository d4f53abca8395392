package entities

import "time"

type TrackPoint struct {
	Coordinate
	At time.Time
}

// Track is the backend's snapshot of reported fixes for one delivery, oldest first.
type Track struct {
	DeliveryID string
	Points     []TrackPoint
}

// Coordinates returns the valid points in order.
func (t Track) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(t.Points))
	for _, p := range t.Points {
		if p.Valid() {
			coords = append(coords, p.Coordinate)
		}
	}
	return coords
}

// Last returns the newest point, valid or not.
func (t Track) Last() (TrackPoint, bool) {
	if len(t.Points) == 0 {
		return TrackPoint{}, false
	}
	return t.Points[len(t.Points)-1], true
}
