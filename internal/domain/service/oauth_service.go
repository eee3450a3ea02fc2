package service

import "context"

// OAuthUser is the normalized identity extracted from a provider ID token.
type OAuthUser struct {
	// ID is the provider-scoped stable subject identifier.
	ID string
	// Email is the address asserted by the provider.
	Email string
	// Name is the display name, if present.
	Name string
	// AvatarURL is the profile picture, if present.
	AvatarURL string
	// EmailVerified reports whether the provider has verified the address.
	EmailVerified bool
}

// OAuthVerifier validates a provider-issued ID token and extracts the
// identity it asserts.
type OAuthVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
