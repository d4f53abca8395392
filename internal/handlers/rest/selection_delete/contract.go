//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_delete_test
package selection_delete

type Service interface {
	ClearSelection()
}

type Tracker interface {
	Clear()
}
