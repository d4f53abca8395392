//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=poller_test
package poller

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

type Gateway interface {
	ListRiders(ctx context.Context) ([]entities.Rider, error)
	ListDeliveries(ctx context.Context, status entities.DeliveryStatus) ([]entities.Delivery, error)
}

type Notifier interface {
	Warn(msg string)
}
