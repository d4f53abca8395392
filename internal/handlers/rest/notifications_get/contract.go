//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_get_test
package notifications_get

import "console/internal/pkg/notify"

type Notifier interface {
	Recent() []notify.Notification
}
