package geo

import (
	"math"

	"console/internal/entities"
)

const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters. A nil or invalid
// coordinate yields 0.
func Haversine(a, b *entities.Coordinate) float64 {
	if !entities.ValidPtr(a) || !entities.ValidPtr(b) {
		return 0
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h just past 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
