package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*UserResponse, error)
}
