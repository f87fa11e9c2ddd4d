package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials       = errors.New("invalid login or password")
	ErrInvalidToken             = errors.New("invalid or missing token")
	ErrManagerPrivilegeRequired = errors.New("manager privileges required")
)
