//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import (
	"context"

	"console/pkg/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
