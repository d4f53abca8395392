//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mapview_test
package mapview

import (
	"console/internal/entities"
	"console/internal/pkg/surface"
	"console/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Surface interface {
	Init(center entities.Coordinate, zoom int) bool
	AddMarker(marker surface.Marker) surface.LayerID
	AddPolyline(line surface.Polyline) surface.LayerID
	RemoveLayer(id surface.LayerID)
	FitBounds(bounds entities.Bounds, padding int)
}

type OriginLookup interface {
	Lookup(tenantID string) (entities.Coordinate, bool)
}

type TenantSource interface {
	TenantID() string
}
