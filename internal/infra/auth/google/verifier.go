// Package google verifies Google-issued ID tokens for OAuth sign-in.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"ezstudy/config"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/errors"
)

// verifier implements service.OAuthVerifier for Google ID tokens.
// Signature, issuer, audience and expiry checks are delegated to the
// idtoken package, which caches Google's public keys.
type verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier creates a Google ID token verifier bound to the configured
// OAuth client ID.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	return &verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthVerifier.
func (v *verifier) VerifyIDToken(ctx context.Context, idTokenString string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload, "email"),
		Name:          claimString(payload, "name"),
		AvatarURL:     claimString(payload, "picture"),
		EmailVerified: claimBool(payload, "email_verified"),
	}

	if user.Email == "" {
		return nil, errors.New("ID token carries no email claim")
	}

	v.logger.Info("Google ID token verified",
		slog.String("googleID", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)

	return value
}

func claimBool(payload *idtoken.Payload, key string) bool {
	value, _ := payload.Claims[key].(bool)

	return value
}
