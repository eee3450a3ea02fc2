// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"ezstudy/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators carried in the "type" claim.
const (
	TokenTypeAccess            = "access"
	TokenTypeRefresh           = "refresh"
	TokenTypeEmailVerification = "email-verification"
)

// Claims defines the custom claims carried by first-party JWTs.
type Claims struct {
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the session material handed to a caller after successful
// authentication. ExpiresIn is the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
//
// Access and refresh tokens are signed with distinct secrets; the email
// verification token uses a third, single-purpose secret.
type TokenService interface {
	// GenerateTokenPair creates a new access/refresh token pair for an identity.
	// Persisting the refresh token on the account (rotation-on-issue) is the
	// caller's responsibility.
	GenerateTokenPair(identity *entity.CredentialIdentity) (*TokenPair, error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(token string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*Claims, error)

	// GenerateVerificationToken creates a single-purpose email verification
	// token and reports its time-to-live.
	GenerateVerificationToken(accountID uuid.UUID, email string) (token string, ttl time.Duration, err error)

	// ValidateVerificationToken checks an email verification token, including
	// its "type" claim, and returns its claims.
	ValidateVerificationToken(token string) (*Claims, error)
}
