//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gps_fill_post_test
package gps_fill_post

import (
	"context"

	"console/internal/service/reporter"
)

type Reporter interface {
	FillFromDevice(ctx context.Context) (reporter.Fields, error)
}
