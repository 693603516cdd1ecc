package auth

import "context"

type AuthService interface {
	// Login authenticates with email and password; the issued token's
	// claims carry the role set and login_method=password.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithGoogle finishes the OAuth code exchange; the issued token's
	// claims carry login_method=google, which the Settings narrowing rule
	// reads.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)

	// Refresh trades a valid refresh token for a new access token carrying
	// the user's current role set.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
}
