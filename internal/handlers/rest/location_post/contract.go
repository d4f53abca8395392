//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_post_test
package location_post

import (
	"context"

	"console/internal/service/delivery"
)

type Service interface {
	SendLocation(ctx context.Context, form delivery.LocationForm) error
}
