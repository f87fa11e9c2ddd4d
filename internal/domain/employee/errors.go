package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLoginExists      = errors.New("login is already taken")
	ErrEmailExists      = errors.New("email is already registered")
)
