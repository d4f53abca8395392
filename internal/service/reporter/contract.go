//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reporter_test
package reporter

import (
	"context"
	"time"

	"console/internal/entities"
	"console/internal/pkg/geolocation"
	"console/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Locator interface {
	Available() bool
	CurrentPosition(ctx context.Context, opts geolocation.Options) (geolocation.Position, error)
	Watch(opts geolocation.Options, onUpdate func(geolocation.Position), onError func(error)) (geolocation.Watch, error)
}

type Gateway interface {
	PushLocation(ctx context.Context, deliveryID string, c entities.Coordinate, timeout time.Duration) error
}

type Notifier interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

type Recorder interface {
	RecordLocation(ctx context.Context, sample entities.LocationSample) error
}
