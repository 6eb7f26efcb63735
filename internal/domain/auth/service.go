package auth

import "context"

// AuthService is a thin login stub over the user table. Registration, refresh
// tokens and OAuth are out of scope for this system.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
