package journal

import "time"

type LocationSampleDB struct {
	ID         int64
	DeliveryID string
	Lat        float64
	Lng        float64
	Accuracy   *float64
	Source     string
	Delivered  bool
	RecordedAt time.Time
}

type SimulationRunDB struct {
	ID         string
	DeliveryID *string
	OriginLat  float64
	OriginLng  float64
	DestLat    float64
	DestLng    float64
	Points     int
	Outcome    string
	StartedAt  time.Time
	FinishedAt *time.Time
}
