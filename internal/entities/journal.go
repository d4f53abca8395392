package entities

import "time"

type LocationSource string

const (
	SourceDevice LocationSource = "device"
	SourceManual LocationSource = "manual"
)

// LocationSample is one position sent (or attempted) to the backend for a delivery.
type LocationSample struct {
	ID         int64
	DeliveryID string
	Coordinate
	Accuracy  float64
	Source    LocationSource
	Delivered bool
	At        time.Time
}

type SimulationOutcome string

const (
	OutcomeArrived SimulationOutcome = "arrived"
	OutcomeStopped SimulationOutcome = "stopped"
)

type SimulationRun struct {
	ID          string
	DeliveryID  string
	Origin      Coordinate
	Destination Coordinate
	Points      int
	Outcome     SimulationOutcome
	StartedAt   time.Time
	FinishedAt  time.Time
}
