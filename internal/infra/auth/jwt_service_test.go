package auth

import (
	"testing"
	"time"

	"ezstudy/config"
	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.EmailVerification = "test_verification_secret_key_very_long_for_testing"
	cfg.Token = config.TokenConfig{
		Issuer:             "ez-study",
		AccessExpiry:       "15m",
		RefreshExpiry:      "7d",
		VerificationExpiry: "24h",
	}

	return cfg
}

func testIdentity() *entity.CredentialIdentity {
	return &entity.CredentialIdentity{
		ProfileID: uuid.New(),
		AccountID: uuid.New(),
		Email:     "student@example.com",
		FullName:  "Test Student",
		Role:      entity.RoleStudent,
	}
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	identity := testIdentity()

	pair, err := jwtService.GenerateTokenPair(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn) // 15m

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.AccountID, accessClaims.AccountID)
	assert.Equal(t, identity.Email, accessClaims.Email)
	assert.Equal(t, "student", accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.TokenType)
	assert.Equal(t, "ez-study", accessClaims.Issuer)
	assert.Equal(t, identity.AccountID.String(), accessClaims.Subject)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, identity.AccountID, refreshClaims.AccountID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens carry no role
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_RefreshTokenLifetime(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	claims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 7*24*time.Hour, lifetime)
}

func TestJWTService_TokenTypeCrossRejection(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	// An access token is not a refresh token, even with both signatures
	// sharing the HMAC scheme.
	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	_, err = otherService.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_MalformedTokenRejected(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_VerificationTokenRoundTrip(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	token, ttl, err := jwtService.GenerateVerificationToken(accountID, "student@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 24*time.Hour, ttl)

	claims, err := jwtService.ValidateVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, service.TokenTypeEmailVerification, claims.TokenType)

	// Verification tokens sign with their own secret, so the other
	// validators must reject them.
	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := testTokenConfig()
	cfg.SecretKey.Refresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_InvalidExpiryConfig(t *testing.T) {
	testCases := []struct {
		name   string
		expiry string
	}{
		{name: "empty", expiry: ""},
		{name: "no unit", expiry: "15"},
		{name: "unknown unit", expiry: "15x"},
		{name: "no amount", expiry: "m"},
		{name: "not a number", expiry: "abcm"},
		{name: "negative amount", expiry: "-5m"},
		{name: "zero amount", expiry: "0h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testTokenConfig()
			cfg.Token.AccessExpiry = tc.expiry

			_, err := NewJWTService(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenConfigInvalid))
		})
	}
}

func TestParseExpiry(t *testing.T) {
	testCases := []struct {
		value string
		want  time.Duration
	}{
		{value: "30s", want: 30 * time.Second},
		{value: "15m", want: 15 * time.Minute},
		{value: "24h", want: 24 * time.Hour},
		{value: "7d", want: 7 * 24 * time.Hour},
		{value: "7D", want: 7 * 24 * time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := parseExpiry(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
