package auth

import "context"

// AuthService defines registration, login and token lifecycle operations.
type AuthService interface {
	// Register creates a MONITOR account and issues a token pair.
	// The role is always MONITOR regardless of anything in the request.
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Login authenticates by username. A missing user yields ErrUserNotFound,
	// a wrong password ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid, unrevoked refresh token for a new access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, token string) error
}
