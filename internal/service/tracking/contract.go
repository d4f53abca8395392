//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

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
	GetTrack(ctx context.Context, deliveryID string) (entities.Track, error)
}

type Renderer interface {
	RenderTrack(seq uint64, track entities.Track) bool
	ResetTrack()
}
