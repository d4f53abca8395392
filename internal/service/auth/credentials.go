package auth

import (
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 3

type Credentials struct {
	Username string
	Password string
	TenantID string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// tenantFromUsername derives the tenant from staff usernames like
// "tenant_pq_barranco_staff01".
func tenantFromUsername(username string) string {
	base, _, _ := strings.Cut(username, "_staff")
	if base == "" {
		return username
	}
	return base
}
