//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_patch_test
package delivery_status_patch

import (
	"context"

	"console/internal/entities"
)

type Service interface {
	ChangeDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatus) error
}
