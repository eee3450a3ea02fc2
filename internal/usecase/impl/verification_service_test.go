package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service      usecase.VerificationUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	cache        *mockSvc.MockTokenCache
	mailer       *mockSvc.MockVerificationMailer
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	cache := mockSvc.NewMockTokenCache(t)
	mailer := mockSvc.NewMockVerificationMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewVerificationService(VerificationServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Cache:        cache,
		Mailer:       mailer,
		Logger:       logger,
	})

	return verificationServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cache:        cache,
		mailer:       mailer,
	}
}

func TestVerificationService_Register_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "Student@Example.com",
		Password: "Password123!",
		FullName: "Test Student",
	}
	newAccountID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "student@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, "student@example.com", account.Email)
					assert.Equal(t, "hashed_password", account.PasswordHash)
					assert.Equal(t, entity.ProviderLocal, account.Provider)
					assert.Equal(t, entity.AccountStatusInactive, account.Status)
					account.ID = newAccountID
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, newAccountID, profile.AccountID)
					assert.Equal(t, entity.RoleStudent, profile.Role)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateVerificationToken(newAccountID, "student@example.com").
		Return("verification_token", 24*time.Hour, nil)
	fx.cache.EXPECT().
		Set(ctx, "verify-token:"+newAccountID.String(), "verification_token", 24*time.Hour).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, "student@example.com", "verification_token").
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newAccountID, output.Account.ID)
	assert.Equal(t, entity.AccountStatusInactive, output.Account.Status)
	assert.Equal(t, input.FullName, output.Profile.FullName)
}

func TestVerificationService_Register_WithExplicitRole(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "teacher@example.com",
		Password: "Password123!",
		FullName: "Test Teacher",
		Role:     entity.RoleTeacher,
	}
	newAccountID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "teacher@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = newAccountID
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, entity.RoleTeacher, profile.Role)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateVerificationToken(newAccountID, "teacher@example.com").
		Return("verification_token", 24*time.Hour, nil)
	fx.cache.EXPECT().
		Set(ctx, "verify-token:"+newAccountID.String(), "verification_token", 24*time.Hour).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, "teacher@example.com", "verification_token").
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleTeacher, output.Profile.Role)
}

func TestVerificationService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "taken@example.com").
				Return(&entity.Account{ID: uuid.New(), Email: "taken@example.com"}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestVerificationService_Register_MailFailureDoesNotFailRegistration(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Email: "student@example.com", Password: "Password123!", FullName: "Test Student"}
	newAccountID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "student@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = newAccountID
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateVerificationToken(newAccountID, "student@example.com").
		Return("verification_token", 24*time.Hour, nil)
	fx.cache.EXPECT().
		Set(ctx, "verify-token:"+newAccountID.String(), "verification_token", 24*time.Hour).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, "student@example.com", "verification_token").
		Return(errors.New("smtp connection refused"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newAccountID, output.Account.ID)
}

func TestVerificationService_VerifyEmail_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "student@example.com", Status: entity.AccountStatusInactive}
	claims := &service.Claims{AccountID: accountID, Email: account.Email, TokenType: service.TokenTypeEmailVerification}

	fx.tokenService.EXPECT().ValidateVerificationToken("verification_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.cache.EXPECT().Get(ctx, "verify-token:"+accountID.String()).Return("verification_token", nil)
	fx.accountRepo.EXPECT().UpdateStatus(ctx, accountID, entity.AccountStatusActive).Return(nil)
	fx.cache.EXPECT().Del(ctx, "verify-token:"+accountID.String()).Return(nil)

	err := fx.service.VerifyEmail(ctx, "verification_token")

	assert.NoError(t, err)
}

func TestVerificationService_VerifyEmail_BadSignature(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ValidateVerificationToken("garbage").
		Return(nil, errors.New("token is malformed"))

	err := fx.service.VerifyEmail(ctx, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenInvalid)
}

func TestVerificationService_VerifyEmail_ExpiredCacheMirror(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Status: entity.AccountStatusInactive}
	claims := &service.Claims{AccountID: accountID, TokenType: service.TokenTypeEmailVerification}

	fx.tokenService.EXPECT().ValidateVerificationToken("verification_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.cache.EXPECT().
		Get(ctx, "verify-token:"+accountID.String()).
		Return("", service.ErrCacheMiss)

	err := fx.service.VerifyEmail(ctx, "verification_token")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenInvalid)
}

func TestVerificationService_VerifyEmail_SupersededToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Status: entity.AccountStatusInactive}
	claims := &service.Claims{AccountID: accountID, TokenType: service.TokenTypeEmailVerification}

	fx.tokenService.EXPECT().ValidateVerificationToken("older_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.cache.EXPECT().Get(ctx, "verify-token:"+accountID.String()).Return("newer_token", nil)

	err := fx.service.VerifyEmail(ctx, "older_token")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenInvalid)
}

func TestVerificationService_VerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Status: entity.AccountStatusActive}
	claims := &service.Claims{AccountID: accountID, TokenType: service.TokenTypeEmailVerification}

	fx.tokenService.EXPECT().ValidateVerificationToken("verification_token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	err := fx.service.VerifyEmail(ctx, "verification_token")

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyVerified)
}

func TestVerificationService_ResendVerification_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "student@example.com", Status: entity.AccountStatusInactive}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.cache.EXPECT().
		SetIfAbsent(ctx, "resend-verify:"+account.Email, "1", 5*time.Minute).
		Return(true, nil)
	fx.tokenService.EXPECT().
		GenerateVerificationToken(account.ID, account.Email).
		Return("fresh_token", 24*time.Hour, nil)
	fx.cache.EXPECT().
		Set(ctx, "verify-token:"+account.ID.String(), "fresh_token", 24*time.Hour).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, account.Email, "fresh_token").
		Return(nil)

	err := fx.service.ResendVerification(ctx, account.Email)

	assert.NoError(t, err)
}

func TestVerificationService_ResendVerification_CooldownActive(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "student@example.com", Status: entity.AccountStatusInactive}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.cache.EXPECT().
		SetIfAbsent(ctx, "resend-verify:"+account.Email, "1", 5*time.Minute).
		Return(false, nil)
	fx.cache.EXPECT().
		TTL(ctx, "resend-verify:"+account.Email).
		Return(137*time.Second, nil)

	err := fx.service.ResendVerification(ctx, account.Email)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResendCooldown)
	assert.Contains(t, err.Error(), "3 minutes") // ceil(137s / 60)
}

func TestVerificationService_ResendVerification_MailFailureStillSucceeds(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "student@example.com", Status: entity.AccountStatusInactive}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.cache.EXPECT().
		SetIfAbsent(ctx, "resend-verify:"+account.Email, "1", 5*time.Minute).
		Return(true, nil)
	fx.tokenService.EXPECT().
		GenerateVerificationToken(account.ID, account.Email).
		Return("fresh_token", 24*time.Hour, nil)
	fx.cache.EXPECT().
		Set(ctx, "verify-token:"+account.ID.String(), "fresh_token", 24*time.Hour).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, account.Email, "fresh_token").
		Return(errors.New("smtp connection refused"))

	err := fx.service.ResendVerification(ctx, account.Email)

	assert.NoError(t, err)
}

func TestVerificationService_ResendVerification_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ResendVerification(ctx, "nobody@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestVerificationService_ResendVerification_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "student@example.com", Status: entity.AccountStatusActive}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	err := fx.service.ResendVerification(ctx, account.Email)

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyVerified)
}
