//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journal_get_test
package journal_get

import (
	"context"

	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Locations(ctx context.Context, deliveryID string, limit uint64) ([]entities.LocationSample, error)
	Simulations(ctx context.Context, deliveryID string, limit uint64) ([]entities.SimulationRun, error)
}
