//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_status_patch_test
package rider_status_patch

import (
	"context"

	"console/internal/entities"
)

type Service interface {
	SetRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error
}
