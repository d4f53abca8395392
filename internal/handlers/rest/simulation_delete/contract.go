//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=simulation_delete_test
package simulation_delete

import "context"

type Simulator interface {
	Stop(ctx context.Context)
	Clear(ctx context.Context)
}
