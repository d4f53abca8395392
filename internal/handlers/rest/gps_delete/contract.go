//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gps_delete_test
package gps_delete

type Reporter interface {
	Stop()
}
