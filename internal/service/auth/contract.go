//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"console/internal/entities"
	"console/internal/pkg/session"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	Login(ctx context.Context, req entities.LoginRequest) (entities.StaffUser, error)
	Health(ctx context.Context) error
}

type Session interface {
	Activate(user entities.StaffUser) error
	Clear(reason session.ClearReason)
	User() (entities.StaffUser, bool)
	TenantID() string
	SetTenantID(tenantID string)
}

type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}
