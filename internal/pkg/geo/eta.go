package geo

import (
	"math"

	"console/internal/entities"
)

// DefaultSpeedMps is an urban motorbike average, about 30 km/h.
const DefaultSpeedMps = 8.33

// EstimateSeconds converts a distance into travel time at speedMps.
// A non-positive speed falls back to DefaultSpeedMps.
func EstimateSeconds(distanceMeters, speedMps float64) float64 {
	if speedMps <= 0 || math.IsNaN(speedMps) || math.IsInf(speedMps, 0) {
		speedMps = DefaultSpeedMps
	}
	if distanceMeters <= 0 || math.IsNaN(distanceMeters) {
		return 0
	}
	return distanceMeters / speedMps
}

type Estimate struct {
	DistanceMeters float64
	Seconds        float64
	Text           string
}

// ETA estimates the straight-line travel from one point to another.
func ETA(from, to *entities.Coordinate, speedMps float64) Estimate {
	distance := Haversine(from, to)
	seconds := EstimateSeconds(distance, speedMps)
	return Estimate{
		DistanceMeters: distance,
		Seconds:        seconds,
		Text:           FormatDuration(seconds),
	}
}
