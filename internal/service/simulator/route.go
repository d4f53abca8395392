package simulator

import (
	"math"

	"console/internal/entities"
)

const (
	DefaultSteps     = 30
	DefaultAmplitude = 0.002
)

// GenerateRoutePoints interpolates n+1 points from origin to dest and shakes
// them a little so the route looks like it follows streets. The noise envelope
// is sin(t*pi), zero at both ends and widest in the middle. rnd returns values
// in [0, 1).
func GenerateRoutePoints(origin, dest entities.Coordinate, n int, rnd func() float64) []entities.Coordinate {
	return generateRoutePoints(origin, dest, n, DefaultAmplitude, rnd)
}

func generateRoutePoints(origin, dest entities.Coordinate, n int, amplitude float64, rnd func() float64) []entities.Coordinate {
	if n <= 0 {
		n = DefaultSteps
	}

	points := make([]entities.Coordinate, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		base := interpolate(origin, dest, t)

		noise := math.Sin(t*math.Pi) * amplitude
		points = append(points, entities.Coordinate{
			Lat: base.Lat + (rnd()-0.5)*noise,
			Lng: base.Lng + (rnd()-0.5)*noise,
		})
	}
	return points
}

func interpolate(from, to entities.Coordinate, t float64) entities.Coordinate {
	return entities.Coordinate{
		Lat: from.Lat + (to.Lat-from.Lat)*t,
		Lng: from.Lng + (to.Lng-from.Lng)*t,
	}
}
