package dto

import (
	"time"

	"console/internal/entities"
	"console/internal/pkg/geo"
	"console/internal/pkg/geolocation"
	"console/internal/service/delivery"
	"console/internal/service/reporter"
)

func CoordinateFromEntity(c *entities.Coordinate) *Coordinate {
	if !entities.ValidPtr(c) {
		return nil
	}
	return &Coordinate{Lat: c.Lat, Lng: c.Lng}
}

func RiderFromEntity(r entities.RiderView) Rider {
	return Rider{
		ID:        r.ID,
		Name:      r.Name,
		Status:    r.Status.String(),
		Available: r.Available,
	}
}

func RidersFromEntities(riders []entities.RiderView) []Rider {
	result := make([]Rider, 0, len(riders))
	for _, r := range riders {
		result = append(result, RiderFromEntity(r))
	}
	return result
}

func DeliveryFromEntity(d entities.Delivery) Delivery {
	return Delivery{
		ID:           d.ID,
		OrderID:      d.OrderID,
		RiderID:      d.RiderID,
		Status:       d.Status.String(),
		Destination:  CoordinateFromEntity(d.Destination),
		Location:     CoordinateFromEntity(d.Location),
		CustomerName: d.CustomerName,
		Address:      d.Address,
	}
}

func DeliveriesFromEntities(deliveries []entities.Delivery) []Delivery {
	result := make([]Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		result = append(result, DeliveryFromEntity(d))
	}
	return result
}

func SelectionFromService(s delivery.Selection) Selection {
	return Selection{
		DeliveryID:  s.DeliveryID,
		OrderID:     s.OrderID,
		TrackingID:  s.TrackingID,
		RiderID:     s.RiderID,
		Destination: CoordinateFromEntity(s.Destination),
	}
}

func TrackFromEntity(t entities.Track) Track {
	points := make([]TrackPoint, 0, len(t.Points))
	for _, p := range t.Points {
		if !p.Valid() {
			continue
		}
		points = append(points, TrackPoint{
			Lat: p.Lat,
			Lng: p.Lng,
			At:  TimePtr(p.At),
		})
	}
	return Track{
		DeliveryID: t.DeliveryID,
		Points:     points,
	}
}

func ETAFromEstimate(e *geo.Estimate) *ETA {
	if e == nil {
		return nil
	}
	return &ETA{
		DistanceMeters: e.DistanceMeters,
		Seconds:        e.Seconds,
		Text:           e.Text,
	}
}

// TimePtr is nil for the zero time.
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func GPSFieldsOf(f reporter.Fields) GPSFields {
	return GPSFields{
		Lat: f.Lat,
		Lng: f.Lng,
	}
}

// NewGPSStatus describes the reporter; pos is the last fix, nil before the first.
func NewGPSStatus(active bool, deliveryID string, fields reporter.Fields, pos *geolocation.Position) GPSStatus {
	status := GPSStatus{
		Active:     active,
		DeliveryID: deliveryID,
		Fields:     GPSFieldsOf(fields),
	}
	if pos != nil {
		status.Accuracy = pos.Accuracy
		status.FixAt = TimePtr(pos.At)
	}
	return status
}

func JournalLocationsFromEntities(samples []entities.LocationSample) []JournalLocation {
	res := make([]JournalLocation, 0, len(samples))
	for _, s := range samples {
		res = append(res, JournalLocation{
			ID:        s.ID,
			Lat:       s.Lat,
			Lng:       s.Lng,
			Accuracy:  s.Accuracy,
			Source:    string(s.Source),
			Delivered: s.Delivered,
			At:        s.At,
		})
	}
	return res
}

func JournalSimulationsFromEntities(runs []entities.SimulationRun) []JournalSimulation {
	res := make([]JournalSimulation, 0, len(runs))
	for _, r := range runs {
		res = append(res, JournalSimulation{
			ID:          r.ID,
			Origin:      Coordinate{Lat: r.Origin.Lat, Lng: r.Origin.Lng},
			Destination: Coordinate{Lat: r.Destination.Lat, Lng: r.Destination.Lng},
			Points:      r.Points,
			Outcome:     string(r.Outcome),
			StartedAt:   r.StartedAt,
			FinishedAt:  TimePtr(r.FinishedAt),
		})
	}
	return res
}
