//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=refresh_post_test
package refresh_post

import (
	"context"

	"console/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ReloadAll(ctx context.Context) error
}
