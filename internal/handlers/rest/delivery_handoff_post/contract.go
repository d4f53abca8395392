//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_handoff_post_test
package delivery_handoff_post

import "context"

type Service interface {
	Handoff(ctx context.Context, orderID string) error
}
