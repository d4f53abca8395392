package backend

import (
	"context"
	"net/http"

	"console/internal/entities"
	"console/internal/pkg/session"
	"console/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type sessionStore interface {
	User() (entities.StaffUser, bool)
	TenantID() string
	Clear(reason session.ClearReason)
}
