//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=map_get_test
package map_get

import "console/internal/handlers/rest/dto"

type MapState interface {
	Build() dto.MapResponse
}
