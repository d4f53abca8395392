//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=simulation_post_test
package simulation_post

import (
	"context"

	"console/internal/entities"
	"console/internal/service/delivery"
	"console/internal/service/mapview"
)

type Simulator interface {
	Start(ctx context.Context, deliveryID string, origin, dest *entities.Coordinate) error
	Simulating() bool
	Progress() int
}

type Selection interface {
	Selection() delivery.Selection
}

type MapState interface {
	Snapshot() mapview.Snapshot
}

type LiveData interface {
	Delivery(deliveryID string) (entities.Delivery, bool)
}
