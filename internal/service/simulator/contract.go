//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=simulator_test
package simulator

import (
	"context"

	"console/internal/entities"
	"console/internal/pkg/surface"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Surface interface {
	Init(center entities.Coordinate, zoom int) bool
	AddMarker(marker surface.Marker) surface.LayerID
	AddPolyline(line surface.Polyline) surface.LayerID
	SetMarkerPosition(id surface.LayerID, position entities.Coordinate) error
	SetPolylinePoints(id surface.LayerID, points []entities.Coordinate) error
	RemoveLayer(id surface.LayerID)
	FitBounds(bounds entities.Bounds, padding int)
}

type Notifier interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
}

type Recorder interface {
	RecordSimulation(ctx context.Context, run entities.SimulationRun) error
}
