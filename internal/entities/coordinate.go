package entities

import "math"

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether both components are finite and within range.
// Invalid coordinates are treated as absent everywhere in the console.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ValidPtr is Valid for optional coordinates.
func ValidPtr(c *Coordinate) bool {
	return c != nil && c.Valid()
}

type Bounds struct {
	SouthWest Coordinate
	NorthEast Coordinate
}

// BoundsOf returns the bounding box of the valid points. ok is false when none are valid.
func BoundsOf(points []Coordinate) (Bounds, bool) {
	var (
		b     Bounds
		found bool
	)
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		if !found {
			b = Bounds{SouthWest: p, NorthEast: p}
			found = true
			continue
		}
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)
	}
	return b, found
}
