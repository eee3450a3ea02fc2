package service

import "context"

// VerificationMailer delivers account verification emails. Implementations
// are responsible for rendering the verification link from the token.
type VerificationMailer interface {
	SendVerificationEmail(ctx context.Context, to string, token string) error
}
