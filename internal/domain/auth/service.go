package auth

import (
	"context"
)

type AuthService interface {
	// Login validates the submission, classifies it, and issues tokens.
	// A suspicious verdict does not block the login.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the presented refresh token. An empty token is a no-op.
	Logout(ctx context.Context, refreshToken string) error
}
