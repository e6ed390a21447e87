package auth

import "context"

// Service authenticates the dashboard admin against configured credentials.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
