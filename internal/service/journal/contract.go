//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journal_test
package journal

import (
	"context"
	"time"

	"console/internal/entities"
)

type Repository interface {
	CreateLocation(ctx context.Context, sample entities.LocationSample) (int64, error)
	CreateSimulation(ctx context.Context, run entities.SimulationRun) error
	ListLocations(ctx context.Context, deliveryID string, limit uint64) ([]entities.LocationSample, error)
	ListSimulations(ctx context.Context, deliveryID string, limit uint64) ([]entities.SimulationRun, error)
	DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error)
	DeleteSimulationsBefore(ctx context.Context, before time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
