package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"console/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	StateInit State = iota
	StateActive
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateActive:
		return "active"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

type ClearReason string

const (
	ReasonLogout       ClearReason = "logout"
	ReasonUnauthorized ClearReason = "unauthorized"
	ReasonExpired      ClearReason = "expired"
)

var ErrEmptyToken = errors.New("empty session token")

// Session holds the authenticated staff identity and the tenant every backend
// call is scoped to. It is passed explicitly to whoever needs it.
type Session struct {
	mu        sync.RWMutex
	state     State
	user      entities.StaffUser
	tenantID  string
	now       func() time.Time
	listeners []func(ClearReason)
	activated []func(entities.StaffUser)
}

func New(tenantID string) *Session {
	return &Session{
		state:    StateInit,
		tenantID: tenantID,
		now:      time.Now,
	}
}

// Activate moves the session to active. If the token is a JWT carrying an
// exp claim, ExpiresAt is filled from it; opaque tokens are accepted as-is.
func (s *Session) Activate(user entities.StaffUser) error {
	if strings.TrimSpace(user.Token) == "" {
		return ErrEmptyToken
	}

	if user.ExpiresAt.IsZero() {
		if exp, ok := tokenExpiry(user.Token); ok {
			user.ExpiresAt = exp
		}
	}
	if user.LoginTime.IsZero() {
		user.LoginTime = s.now()
	}

	s.mu.Lock()
	s.user = user
	if user.TenantID != "" {
		s.tenantID = user.TenantID
	}
	s.state = StateActive
	activated := make([]func(entities.StaffUser), len(s.activated))
	copy(activated, s.activated)
	s.mu.Unlock()

	for _, fn := range activated {
		fn(user)
	}
	return nil
}

// Clear drops the identity and notifies listeners. The tenant is kept so the
// next login and unauthenticated calls stay scoped.
func (s *Session) Clear(reason ClearReason) {
	s.mu.Lock()
	if s.state == StateCleared {
		s.mu.Unlock()
		return
	}
	s.state = StateCleared
	s.user = entities.StaffUser{}
	listeners := make([]func(ClearReason), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(reason)
	}
}

// OnCleared registers fn to run after every Clear.
func (s *Session) OnCleared(fn func(ClearReason)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// OnActivated registers fn to run after every successful Activate.
func (s *Session) OnActivated(fn func(entities.StaffUser)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activated = append(s.activated, fn)
}

// User returns the active identity. An expired session is cleared on access.
func (s *Session) User() (entities.StaffUser, bool) {
	s.mu.RLock()
	user, state := s.user, s.state
	s.mu.RUnlock()

	if state != StateActive {
		return entities.StaffUser{}, false
	}
	if !user.ExpiresAt.IsZero() && !s.now().Before(user.ExpiresAt) {
		s.Clear(ReasonExpired)
		return entities.StaffUser{}, false
	}
	return user, true
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantID
}

func (s *Session) SetTenantID(tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenantID = tenantID
}

var access = map[string][]entities.Role{
	"kitchen":   {entities.RoleStaff, entities.RoleAdmin, entities.RoleKitchen},
	"delivery":  {entities.RoleStaff, entities.RoleAdmin, entities.RoleDelivery},
	"admin":     {entities.RoleAdmin},
	"analytics": {entities.RoleAdmin, entities.RoleManager},
}

// HasRole is true for the exact role; admins hold every role.
func (s *Session) HasRole(role entities.Role) bool {
	user, ok := s.User()
	if !ok {
		return false
	}
	return user.Role == role || user.Role == entities.RoleAdmin
}

// CanAccess checks an area of the console against the user's role.
func (s *Session) CanAccess(area string) bool {
	user, ok := s.User()
	if !ok {
		return false
	}
	for _, role := range access[area] {
		if user.Role == role {
			return true
		}
	}
	return false
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
