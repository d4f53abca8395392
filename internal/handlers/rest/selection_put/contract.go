//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_put_test
package selection_put

import (
	"context"

	"console/internal/entities"
	"console/internal/service/delivery"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SelectDelivery(deliveryID string) (delivery.Selection, error)
	SelectRider(riderID string) (delivery.Selection, error)
}

type Tracker interface {
	Track(ctx context.Context, deliveryID string) (entities.Track, error)
	ID() string
}
