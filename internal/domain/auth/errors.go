package auth

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenExpired          = errors.New("token has expired")
	ErrRefreshTokenRevoked   = errors.New("refresh token has been revoked")
	ErrClassifierUnavailable = errors.New("login classification service unavailable")
)
