package mapstate

import "console/internal/handlers/rest/dto"

// Source assembles the map payload served over REST and pushed over websocket.
type Source struct {
	surface   Surface
	renderer  Renderer
	tracker   Tracker
	simulator Simulator
}

func New(surface Surface, renderer Renderer, tracker Tracker, simulator Simulator) *Source {
	return &Source{
		surface:   surface,
		renderer:  renderer,
		tracker:   tracker,
		simulator: simulator,
	}
}

func (s *Source) Build() dto.MapResponse {
	snap := s.renderer.Snapshot()

	return dto.MapResponse{
		Map: s.surface.GeoJSON(),
		Tracking: dto.Tracking{
			DeliveryID:  s.tracker.ID(),
			Position:    dto.CoordinateFromEntity(snap.Position),
			Destination: dto.CoordinateFromEntity(snap.Destination),
			Origin:      dto.CoordinateFromEntity(snap.Origin),
			TrackPoints: snap.TrackPoints,
			ETA:         dto.ETAFromEstimate(snap.ETA),
			RenderedAt:  dto.TimePtr(s.tracker.RenderedAt()),
		},
		Simulation: dto.SimulationStatus{
			Simulating: s.simulator.Simulating(),
			Progress:   s.simulator.Progress(),
		},
	}
}
