//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_changed_test
package delivery_status_changed

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

type LiveData interface {
	ReloadActives(ctx context.Context) error
}

type Tracker interface {
	ID() string
	Refresh(ctx context.Context) (entities.Track, error)
}

type TenantSource interface {
	TenantID() string
}
