//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_get_test
package delivery_get

import (
	"context"

	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	QueryDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error)
}
