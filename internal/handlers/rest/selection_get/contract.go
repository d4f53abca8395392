//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_get_test
package selection_get

import (
	"console/internal/service/delivery"
	"console/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Selection() delivery.Selection
}
