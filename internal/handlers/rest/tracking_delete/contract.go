//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_delete_test
package tracking_delete

type Tracker interface {
	Clear()
}
