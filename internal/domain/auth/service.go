package auth

import (
	"context"
)

// AuthService handles registration, login and token lifecycle.
type AuthService interface {
	// Register creates a Pending intern account awaiting admin approval
	Register(ctx context.Context, req RegisterRequest) error

	// Login authenticates an approved account and issues token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// GoogleRedirectURL builds the OAuth2 consent redirect
	GoogleRedirectURL(userAgent string) string

	// GoogleCallback completes the OAuth2 flow and issues a token pair
	GoogleCallback(ctx context.Context, state string, code string, userAgent string) (TokenResponse, error)
}
