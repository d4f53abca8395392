//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_guard_test
package session_guard

import (
	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Session interface {
	User() (entities.StaffUser, bool)
	CanAccess(area string) bool
}
