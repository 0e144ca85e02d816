package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
