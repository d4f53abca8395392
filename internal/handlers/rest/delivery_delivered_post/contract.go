//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_delivered_post_test
package delivery_delivered_post

import (
	"context"

	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkDelivered(ctx context.Context, deliveryID string) error
}
