// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ezstudy/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
// Role is optional and defaults to student.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	Role        entity.Role
	DateOfBirth *time.Time
}

// RegisterOutput returns the newly created account and profile.
type RegisterOutput struct {
	Account *entity.Account
	Profile *entity.Profile
}

// VerificationUsecase drives the email verification workflow: registration,
// token confirmation and rate-limited resend.
type VerificationUsecase interface {
	// Register creates an inactive account with its profile, then issues and
	// mails a verification token.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// VerifyEmail confirms a verification token and activates the account.
	// The token must still be mirrored in the cache to be accepted.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification issues a fresh verification token for an
	// unverified account, subject to a cooldown window per email address.
	ResendVerification(ctx context.Context, email string) error
}
