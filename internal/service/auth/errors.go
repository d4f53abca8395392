package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrMissingToken       = errors.New("login response has no token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
