package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (SessionResponse, error)

	// LoginWithGoogle authenticates with a verified Google identity,
	// creating an employee-role account on first sign-in
	LoginWithGoogle(ctx context.Context, email string, googleID string, name string, session SessionTrackingRequest) (SessionResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
