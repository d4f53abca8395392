//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_assign_post_test
package delivery_assign_post

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
	Form() delivery.AssignmentForm
	Assign(ctx context.Context, form delivery.AssignmentForm) (entities.AssignmentResult, error)
	AssignFromCard(ctx context.Context, deliveryID, riderID string) (entities.AssignmentResult, error)
}
