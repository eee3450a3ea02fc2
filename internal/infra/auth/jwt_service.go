// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ezstudy/config"
	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret       string        // Secret key for signing access tokens.
	refreshSecret      string        // Secret key for signing refresh tokens.
	verificationSecret string        // Secret key for signing email verification tokens.
	accessTTL          time.Duration // Time-to-live for access tokens.
	refreshTTL         time.Duration // Time-to-live for refresh tokens.
	verificationTTL    time.Duration // Time-to-live for verification tokens.
	issuer             string
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
// Expiry strings are parsed eagerly so a malformed value fails at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.EmailVerification == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, err := parseExpiry(cfg.Token.AccessExpiry)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := parseExpiry(cfg.Token.RefreshExpiry)
	if err != nil {
		return nil, err
	}
	verificationTTL, err := parseExpiry(cfg.Token.VerificationExpiry)
	if err != nil {
		return nil, err
	}

	return &jwtService{
		accessSecret:       cfg.SecretKey.Access,
		refreshSecret:      cfg.SecretKey.Refresh,
		verificationSecret: cfg.SecretKey.EmailVerification,
		accessTTL:          accessTTL,
		refreshTTL:         refreshTTL,
		verificationTTL:    verificationTTL,
		issuer:             cfg.Token.Issuer,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for a validated identity.
func (s *jwtService) GenerateTokenPair(identity *entity.CredentialIdentity) (*service.TokenPair, error) {
	accessToken, err := s.generateToken(identity.AccountID, identity.Email, identity.Role.String(),
		service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(identity.AccountID, identity.Email, "",
		service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// ValidateAccessToken checks the validity of an access token string.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks the validity of a refresh token string.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// GenerateVerificationToken creates a single-purpose email verification token.
func (s *jwtService) GenerateVerificationToken(accountID uuid.UUID, email string) (string, time.Duration, error) {
	token, err := s.generateToken(accountID, email, "",
		service.TokenTypeEmailVerification, s.verificationTTL, s.verificationSecret)
	if err != nil {
		return "", 0, err
	}

	return token, s.verificationTTL, nil
}

// ValidateVerificationToken checks the validity of an email verification token.
func (s *jwtService) ValidateVerificationToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.verificationSecret, service.TokenTypeEmailVerification)
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, email, role, tokenType string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// validateToken parses a token against a secret and enforces the expected "type" claim.
func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.TokenType != wantType {
		return nil, errors.Errorf("unexpected token type %q", claims.TokenType)
	}

	return claims, nil
}

// parseExpiry converts a compact duration string like "15m" or "7d" into a
// time.Duration. Supported units are s, m, h and d.
func parseExpiry(value string) (time.Duration, error) {
	if len(value) < 2 {
		return 0, domainerrors.ErrTokenConfigInvalid.WithMessagef("invalid expiry format: %q", value)
	}

	amount, err := strconv.Atoi(value[:len(value)-1])
	if err != nil || amount <= 0 {
		return 0, domainerrors.ErrTokenConfigInvalid.WithMessagef("invalid expiry format: %q", value)
	}

	var unit time.Duration
	switch strings.ToLower(value[len(value)-1:]) {
	case "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	default:
		return 0, domainerrors.ErrTokenConfigInvalid.WithMessagef("invalid expiry unit in %q", value)
	}

	return time.Duration(amount) * unit, nil
}
