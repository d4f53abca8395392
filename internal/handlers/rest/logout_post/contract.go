//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=logout_post_test
package logout_post

type Service interface {
	Logout()
}

type Stopper interface {
	Stop()
}
