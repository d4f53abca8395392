//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gps_get_test
package gps_get

import (
	"console/internal/pkg/geolocation"
	"console/internal/service/reporter"
)

type Reporter interface {
	Active() bool
	DeliveryID() string
	Fields() reporter.Fields
	LastPosition() (geolocation.Position, bool)
}
