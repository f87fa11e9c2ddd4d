package auth

import (
	"context"
)

// AuthService defines the login flow.
type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
