//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error)
	AssignDelivery(ctx context.Context, a entities.Assignment) (entities.AssignmentResult, error)
	UpdateRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatus) error
	PushLocation(ctx context.Context, deliveryID string, c entities.Coordinate, timeout time.Duration) error
	Handoff(ctx context.Context, orderID string) error
	MarkOrderDelivered(ctx context.Context, orderID string) error
	StaffConfirmDelivered(ctx context.Context, orderID string) error
}

// LiveData is the poller's view of riders and active deliveries.
type LiveData interface {
	Delivery(deliveryID string) (entities.Delivery, bool)
	Rider(riderID string) (entities.RiderView, bool)
	ReloadRiders(ctx context.Context) error
	ReloadActives(ctx context.Context) error
}

type DestinationSetter interface {
	SetDestination(dest *entities.Coordinate)
}

type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

type Recorder interface {
	RecordLocation(ctx context.Context, sample entities.LocationSample) error
}
