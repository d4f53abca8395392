//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_get_test
package deliveries_get

import (
	"console/internal/entities"
	"console/internal/service/poller"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type LiveData interface {
	Actives() []entities.Delivery
	ReadyToAssign() []entities.Delivery
	Snapshot() poller.Snapshot
}
