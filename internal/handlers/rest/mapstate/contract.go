//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mapstate_test
package mapstate

import (
	"time"

	"console/internal/pkg/surface"
	"console/internal/service/mapview"
)

type Surface interface {
	GeoJSON() surface.FeatureCollection
}

type Renderer interface {
	Snapshot() mapview.Snapshot
}

type Tracker interface {
	ID() string
	RenderedAt() time.Time
}

type Simulator interface {
	Simulating() bool
	Progress() int
}
