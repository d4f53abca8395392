//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_put_test
package tracking_put

import (
	"context"

	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Track(ctx context.Context, deliveryID string) (entities.Track, error)
}
