package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"console/internal/entities"
	"console/internal/gateway/rest/backend"
	"console/internal/pkg/session"
	"console/pkg/logger"
)

const (
	msgMissingCredentials = "Completa usuario y contraseña"
	msgPasswordTooShort   = "Contraseña muy corta"
	msgWelcome            = "¡Bienvenido al sistema!"
	msgBadCredentials     = "Usuario o contraseña incorrectos"
	msgNoToken            = "No se recibió token de autenticación"
	msgConnection         = "Error de conexión"
	msgBackendDegraded    = "Advertencia: Hay problemas de conexión con el servidor"
)

var clearMessages = map[session.ClearReason]string{
	session.ReasonExpired:      "Tu sesión ha expirado",
	session.ReasonUnauthorized: "Error de autenticación",
}

const (
	HealthOK    = "ok"
	HealthError = "error"
)

// Auth logs staff in and out of the console session.
type Auth struct {
	log      handlerLogger
	gateway  Gateway
	session  Session
	notifier Notifier
}

func New(log handlerLogger, gateway Gateway, sess Session, notifier Notifier) *Auth {
	return &Auth{
		log:      log.With(logger.NewField("service", "auth")),
		gateway:  gateway,
		session:  sess,
		notifier: notifier,
	}
}

// Login validates the credentials, exchanges them for a token and activates
// the session. Missing response fields fall back to what was sent.
func (a *Auth) Login(ctx context.Context, creds Credentials) (entities.StaffUser, error) {
	switch err := creds.Validate(); {
	case errors.Is(err, ErrMissingCredentials):
		a.notifier.Warn(msgMissingCredentials)
		return entities.StaffUser{}, err
	case errors.Is(err, ErrPasswordTooShort):
		a.notifier.Warn(msgPasswordTooShort)
		return entities.StaffUser{}, err
	}

	username := strings.TrimSpace(creds.Username)
	tenantID := strings.TrimSpace(creds.TenantID)
	if tenantID == "" {
		tenantID = a.session.TenantID()
	}
	if tenantID == "" {
		tenantID = tenantFromUsername(username)
	}

	user, err := a.gateway.Login(ctx, entities.LoginRequest{
		Username: username,
		Password: creds.Password,
		TenantID: tenantID,
	})
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			a.notifier.Error(msgBadCredentials)
			return entities.StaffUser{}, fmt.Errorf("login: %w: %w", ErrInvalidCredentials, err)
		}
		a.notifier.Error(backend.UserMessage(err, msgConnection))
		return entities.StaffUser{}, fmt.Errorf("login: %w", err)
	}

	if user.Token == "" {
		a.notifier.Error(msgNoToken)
		return entities.StaffUser{}, ErrMissingToken
	}

	if user.Role == "" {
		user.Role = entities.RoleStaff
	}
	if user.Username == "" {
		user.Username = username
	}
	if user.ID == "" {
		user.ID = username
	}
	user.Type = "staff"
	if user.TenantID == "" {
		user.TenantID = tenantID
	}

	a.session.SetTenantID(user.TenantID)
	if err := a.session.Activate(user); err != nil {
		return entities.StaffUser{}, fmt.Errorf("activate session: %w", err)
	}

	a.log.Info("staff logged in",
		logger.NewField("user_id", user.ID),
		logger.NewField("role", user.Role.String()),
		logger.NewField("tenant_id", user.TenantID),
	)
	a.notifier.Success(msgWelcome)

	active, _ := a.session.User()
	return active, nil
}

// Logout is the operator's own logout. It stays silent.
func (a *Auth) Logout() {
	a.session.Clear(session.ReasonLogout)
	a.log.Info("staff logged out")
}

// SessionCleared tells the operator why a session ended unexpectedly.
// Registered as a session listener.
func (a *Auth) SessionCleared(reason session.ClearReason) {
	a.log.Info("session cleared", logger.NewField("reason", string(reason)))

	if reason == session.ReasonLogout {
		return
	}
	msg, ok := clearMessages[reason]
	if !ok {
		msg = "Sesión cerrada"
	}
	a.notifier.Warn(msg)
}

// Health probes the backend. A failure only warns the operator when a
// session is active.
func (a *Auth) Health(ctx context.Context) (string, error) {
	if err := a.gateway.Health(ctx); err != nil {
		a.log.Warn("backend health check failed", logger.NewField("error", err))
		if _, ok := a.session.User(); ok {
			a.notifier.Warn(msgBackendDegraded)
		}
		return HealthError, err
	}
	return HealthOK, nil
}
