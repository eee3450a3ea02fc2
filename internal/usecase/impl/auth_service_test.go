package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/repository"
	"ezstudy/internal/domain/service"
	mockRepo "ezstudy/internal/mocks/repository"
	mockSvc "ezstudy/internal/mocks/service"
	"ezstudy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	txManager     *mockRepo.MockTransactionManager
	accountRepo   *mockRepo.MockAccountRepository
	profileRepo   *mockRepo.MockProfileRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	oauthVerifier *mockSvc.MockOAuthVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthVerifier := mockSvc.NewMockOAuthVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		AccountRepo:   accountRepo,
		ProfileRepo:   profileRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		OAuthVerifier: oauthVerifier,
		Logger:        logger,
	})

	return authServiceFixtures{
		service:       service,
		txManager:     txManager,
		accountRepo:   accountRepo,
		profileRepo:   profileRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		oauthVerifier: oauthVerifier,
	}
}

func activeAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Email:        "student@example.com",
		PasswordHash: "hashed_password",
		Provider:     entity.ProviderLocal,
		Status:       entity.AccountStatusActive,
	}
}

func profileFor(account *entity.Account) *entity.Profile {
	return &entity.Profile{
		ID:        uuid.New(),
		AccountID: account.ID,
		FullName:  "Test Student",
		Role:      entity.RoleStudent,
	}
}

func TestAuthService_ValidateCredentials_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	profile := profileFor(account)

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)

	identity, err := fx.service.ValidateCredentials(ctx, " Student@Example.COM ", "Password123!")

	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.AccountID)
	assert.Equal(t, profile.ID, identity.ProfileID)
	assert.Equal(t, profile.FullName, identity.FullName)
	assert.Equal(t, entity.RoleStudent, identity.Role)
}

func TestAuthService_ValidateCredentials_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	identity, err := fx.service.ValidateCredentials(ctx, "nobody@example.com", "whatever")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ValidateCredentials_Unverified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.Status = entity.AccountStatusInactive

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	_, err := fx.service.ValidateCredentials(ctx, account.Email, "Password123!")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)
}

func TestAuthService_ValidateCredentials_GoogleOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.PasswordHash = ""
	account.Provider = entity.ProviderGoogle
	account.GoogleID = "google-sub-123"

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	_, err := fx.service.ValidateCredentials(ctx, account.Email, "Password123!")

	assert.ErrorIs(t, err, domainerrors.ErrPasswordLoginUnavailable)
}

func TestAuthService_ValidateCredentials_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(errors.New("hash mismatch"))

	_, err := fx.service.ValidateCredentials(ctx, account.Email, "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ValidateCredentials_MissingProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(nil)
	fx.profileRepo.EXPECT().
		FindByAccountID(ctx, account.ID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.ValidateCredentials(ctx, account.Email, "Password123!")

	assert.ErrorIs(t, err, domainerrors.ErrProfileIntegrity)
}

func TestAuthService_Login_Success_RotatesRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.RefreshToken = "old_refresh_token"
	profile := profileFor(account)
	pair := &service.TokenPair{
		AccessToken:  "new_access_token",
		RefreshToken: "new_refresh_token",
		ExpiresIn:    900,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.CredentialIdentity")).
		Return(pair, nil)
	fx.accountRepo.EXPECT().
		UpdateRefreshToken(ctx, account.ID, pair.RefreshToken).
		Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: account.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, output.AccessToken)
	assert.Equal(t, pair.RefreshToken, output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
	assert.Equal(t, account.ID, output.Identity.AccountID)
}

func TestAuthService_Login_LastLoginFailureDoesNotFailSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	profile := profileFor(account)
	pair := &service.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.CredentialIdentity")).
		Return(pair, nil)
	fx.accountRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "r").Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).
		Return(errors.New("db down"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: account.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "a", output.AccessToken)
}

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.RefreshToken = "current_refresh_token"
	profile := profileFor(account)
	claims := &service.Claims{AccountID: account.ID, Email: account.Email, TokenType: service.TokenTypeRefresh}
	pair := &service.TokenPair{AccessToken: "next_access", RefreshToken: "next_refresh", ExpiresIn: 900}

	fx.tokenService.EXPECT().ValidateRefreshToken("current_refresh_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.CredentialIdentity")).
		Return(pair, nil)
	fx.accountRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "next_refresh").Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := fx.service.RefreshTokens(ctx, usecase.RefreshInput{RefreshToken: "current_refresh_token"})

	require.NoError(t, err)
	assert.Equal(t, "next_refresh", output.RefreshToken)
}

func TestAuthService_RefreshTokens_InvalidSignature(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshTokens(ctx, usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshTokens_StaleToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.RefreshToken = "rotated_in_token"
	claims := &service.Claims{AccountID: account.ID, TokenType: service.TokenTypeRefresh}

	fx.tokenService.EXPECT().ValidateRefreshToken("rotated_out_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	_, err := fx.service.RefreshTokens(ctx, usecase.RefreshInput{RefreshToken: "rotated_out_token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshTokens_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.Status = entity.AccountStatusInactive
	account.RefreshToken = "current_refresh_token"
	claims := &service.Claims{AccountID: account.ID, TokenType: service.TokenTypeRefresh}

	fx.tokenService.EXPECT().ValidateRefreshToken("current_refresh_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	_, err := fx.service.RefreshTokens(ctx, usecase.RefreshInput{RefreshToken: "current_refresh_token"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)
}

func TestAuthService_Logout_ClearsStoredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.RefreshToken = "current_refresh_token"
	claims := &service.Claims{AccountID: account.ID, TokenType: service.TokenTypeRefresh}

	fx.tokenService.EXPECT().ValidateRefreshToken("current_refresh_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "").Return(nil)

	err := fx.service.Logout(ctx, "current_refresh_token")

	assert.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	err := fx.service.Logout(ctx, "garbage")

	assert.NoError(t, err)
}

func TestAuthService_Logout_StaleTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeAccount()
	account.RefreshToken = "newer_token"
	claims := &service.Claims{AccountID: account.ID, TokenType: service.TokenTypeRefresh}

	fx.tokenService.EXPECT().ValidateRefreshToken("older_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	err := fx.service.Logout(ctx, "older_token")

	assert.NoError(t, err)
}

func googleUser() *service.OAuthUser {
	return &service.OAuthUser{
		ID:            "google-sub-123",
		Email:         "student@example.com",
		Name:          "Test Student",
		AvatarURL:     "https://example.com/avatar.png",
		EmailVerified: true,
	}
}

func expectGoogleSession(fx authServiceFixtures, ctx context.Context, accountID uuid.UUID) *service.TokenPair {
	pair := &service.TokenPair{AccessToken: "g_access", RefreshToken: "g_refresh", ExpiresIn: 900}
	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.CredentialIdentity")).
		Return(pair, nil)
	fx.accountRepo.EXPECT().UpdateRefreshToken(ctx, accountID, "g_refresh").Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, accountID, mock.AnythingOfType("time.Time")).
		Return(nil)

	return pair
}

func TestAuthService_GoogleSignIn_AlreadyLinked(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	account := activeAccount()
	account.Provider = entity.ProviderGoogle
	account.GoogleID = oauthUser.ID
	profile := profileFor(account)

	fx.oauthVerifier.EXPECT().VerifyIDToken(ctx, "id_token").Return(oauthUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().FindByGoogleID(ctx, oauthUser.ID).Return(account, nil)
			mockProfileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	pair := expectGoogleSession(fx, ctx, account.ID)

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "id_token"})

	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, output.AccessToken)
	assert.Equal(t, account.ID, output.Identity.AccountID)
}

func TestAuthService_GoogleSignIn_LinksExistingLocalAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	account := activeAccount()
	account.Status = entity.AccountStatusInactive
	profile := profileFor(account)
	profile.AvatarURL = ""

	fx.oauthVerifier.EXPECT().VerifyIDToken(ctx, "id_token").Return(oauthUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByGoogleID(ctx, oauthUser.ID).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(account, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, updated *entity.Account) {
					assert.Equal(t, oauthUser.ID, updated.GoogleID)
					assert.Equal(t, entity.ProviderGoogle, updated.Provider)
					assert.Equal(t, entity.AccountStatusActive, updated.Status)
				}).
				Return(nil)
			mockProfileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)
			mockProfileRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, updated *entity.Profile) {
					assert.Equal(t, oauthUser.AvatarURL, updated.AvatarURL)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	expectGoogleSession(fx, ctx, account.ID)

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "id_token"})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Identity.AccountID)
}

func TestAuthService_GoogleSignIn_ProvisionsNewAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	newAccountID := uuid.New()
	newProfileID := uuid.New()

	fx.oauthVerifier.EXPECT().VerifyIDToken(ctx, "id_token").Return(oauthUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByGoogleID(ctx, oauthUser.ID).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, oauthUser.Email).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, entity.ProviderGoogle, account.Provider)
					assert.Equal(t, entity.AccountStatusActive, account.Status)
					assert.Equal(t, oauthUser.ID, account.GoogleID)
					account.ID = newAccountID
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, newAccountID, profile.AccountID)
					assert.Equal(t, entity.RoleStudent, profile.Role)
					assert.Equal(t, oauthUser.Name, profile.FullName)
					profile.ID = newProfileID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	expectGoogleSession(fx, ctx, newAccountID)

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "id_token"})

	require.NoError(t, err)
	assert.Equal(t, newAccountID, output.Identity.AccountID)
	assert.Equal(t, newProfileID, output.Identity.ProfileID)
	assert.Equal(t, entity.RoleStudent, output.Identity.Role)
}

func TestAuthService_GoogleSignIn_InvalidIDToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.oauthVerifier.EXPECT().
		VerifyIDToken(ctx, "bad_token").
		Return(nil, errors.New("idtoken: signature mismatch"))

	_, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "bad_token"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}
