package journal

import "console/internal/entities"

func LocationToDomain(l *LocationSampleDB) entities.LocationSample {
	sample := entities.LocationSample{
		ID:         l.ID,
		DeliveryID: l.DeliveryID,
		Coordinate: entities.Coordinate{Lat: l.Lat, Lng: l.Lng},
		Source:     entities.LocationSource(l.Source),
		Delivered:  l.Delivered,
		At:         l.RecordedAt,
	}
	if l.Accuracy != nil {
		sample.Accuracy = *l.Accuracy
	}
	return sample
}

func LocationFromDomain(s entities.LocationSample) *LocationSampleDB {
	l := &LocationSampleDB{
		ID:         s.ID,
		DeliveryID: s.DeliveryID,
		Lat:        s.Lat,
		Lng:        s.Lng,
		Source:     string(s.Source),
		Delivered:  s.Delivered,
		RecordedAt: s.At,
	}
	if s.Accuracy > 0 {
		accuracy := s.Accuracy
		l.Accuracy = &accuracy
	}
	return l
}

func SimulationToDomain(r *SimulationRunDB) entities.SimulationRun {
	run := entities.SimulationRun{
		ID:          r.ID,
		Origin:      entities.Coordinate{Lat: r.OriginLat, Lng: r.OriginLng},
		Destination: entities.Coordinate{Lat: r.DestLat, Lng: r.DestLng},
		Points:      r.Points,
		Outcome:     entities.SimulationOutcome(r.Outcome),
		StartedAt:   r.StartedAt,
	}
	if r.DeliveryID != nil {
		run.DeliveryID = *r.DeliveryID
	}
	if r.FinishedAt != nil {
		run.FinishedAt = *r.FinishedAt
	}
	return run
}

func SimulationFromDomain(run entities.SimulationRun) *SimulationRunDB {
	r := &SimulationRunDB{
		ID:        run.ID,
		OriginLat: run.Origin.Lat,
		OriginLng: run.Origin.Lng,
		DestLat:   run.Destination.Lat,
		DestLng:   run.Destination.Lng,
		Points:    run.Points,
		Outcome:   string(run.Outcome),
		StartedAt: run.StartedAt,
	}
	if run.DeliveryID != "" {
		deliveryID := run.DeliveryID
		r.DeliveryID = &deliveryID
	}
	if !run.FinishedAt.IsZero() {
		finishedAt := run.FinishedAt
		r.FinishedAt = &finishedAt
	}
	return r
}
