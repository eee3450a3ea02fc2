// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ezstudy/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleSignInInput carries the Google-issued ID token from the client.
type GoogleSignInInput struct {
	IDToken string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SessionOutput returns the generated tokens after a successful
// authentication, together with the authenticated identity.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Identity     *entity.CredentialIdentity
}

// AuthUsecase defines the interface for session lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login validates email/password credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// GoogleSignIn verifies a Google ID token, resolves or provisions the
	// matching account and opens a session.
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (*SessionOutput, error)

	// RefreshTokens rotates a valid refresh token into a new token pair.
	// The presented token must match the one stored on the account.
	RefreshTokens(ctx context.Context, input RefreshInput) (*SessionOutput, error)

	// Logout clears the stored refresh token. It succeeds even when the
	// presented token no longer resolves to an account.
	Logout(ctx context.Context, refreshToken string) error

	// ValidateCredentials runs the credential checks without opening a
	// session. It backs login and any flow that needs a password re-check.
	ValidateCredentials(ctx context.Context, email, password string) (*entity.CredentialIdentity, error)
}
