//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gps_post_test
package gps_post

import (
	"context"

	"console/internal/service/reporter"
)

type Reporter interface {
	Start(ctx context.Context, deliveryID string) error
	Fields() reporter.Fields
}
