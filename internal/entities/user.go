package entities

import "time"

type Role string

const (
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
	RoleKitchen  Role = "kitchen"
	RoleDelivery Role = "delivery"
	RoleManager  Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

// StaffUser is the identity the backend returns at login.
type StaffUser struct {
	ID        string
	Email     string
	Username  string
	Type      string
	Role      Role
	TenantID  string
	Token     string
	LoginTime time.Time
	ExpiresAt time.Time
}

type LoginRequest struct {
	Username string
	Password string
	TenantID string
}
