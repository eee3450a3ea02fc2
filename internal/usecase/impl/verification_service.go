package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"ezstudy/config"
	deliverycontext "ezstudy/internal/delivery/context"
	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/repository"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verifyTokenKeyPrefix  = "verify-token:"
	resendCooldownPrefix  = "resend-verify:"
	resendCooldownDefault = 5 * time.Minute
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	cache          service.TokenCache
	mailer         service.VerificationMailer
	resendCooldown time.Duration
	logger         *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Cache        service.TokenCache
	Mailer       service.VerificationMailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	cooldown := resendCooldownDefault
	if params.Config != nil && params.Config.Auth.ResendCooldown > 0 {
		cooldown = params.Config.Auth.ResendCooldown
	}

	return &verificationService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		cache:          params.Cache,
		mailer:         params.Mailer,
		resendCooldown: cooldown,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func verifyTokenKey(accountID uuid.UUID) string {
	return verifyTokenKeyPrefix + accountID.String()
}

func resendCooldownKey(email string) string {
	return resendCooldownPrefix + email
}

// Register creates an inactive account with its profile inside a single
// transaction, then issues and mails a verification token.
func (srv *verificationService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	role := input.Role
	if !role.IsValid() {
		role = entity.RoleStudent
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		Provider:     entity.ProviderLocal,
		Status:       entity.AccountStatusInactive,
	}
	profile := &entity.Profile{
		FullName:    input.FullName,
		DateOfBirth: input.DateOfBirth,
		Role:        role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by email")
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		profile.AccountID = account.ID

		return errors.Wrap(profileRepo.Create(ctx, profile), "failed to create profile")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// The account exists regardless of whether the email goes out, so a
	// delivery failure is logged and the user falls back to resend.
	if err := srv.issueVerification(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Info("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account, Profile: profile}, nil
}

// VerifyEmail confirms a verification token and activates the account. The
// token must still match the cache mirror: a token from a superseded email,
// or one whose cache entry expired, is rejected even if its signature is
// still valid.
func (srv *verificationService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := srv.tokenService.ValidateVerificationToken(token)
	if err != nil {
		return domainerrors.ErrVerificationTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find account by id")
	}

	if account.IsActive() {
		return domainerrors.ErrAccountAlreadyVerified
	}

	cached, err := srv.cache.Get(ctx, verifyTokenKey(claims.AccountID))
	if errors.Is(err, service.ErrCacheMiss) {
		return domainerrors.ErrVerificationTokenInvalid
	}
	if err != nil {
		return errors.Wrap(err, "failed to read verification token mirror")
	}
	if cached != token {
		return domainerrors.ErrVerificationTokenInvalid
	}

	if err := srv.accountRepo.UpdateStatus(ctx, account.ID, entity.AccountStatusActive); err != nil {
		return errors.Wrap(err, "failed to activate account")
	}

	if err := srv.cache.Del(ctx, verifyTokenKey(account.ID)); err != nil {
		// The token is single-use in spirit; the cache entry will still
		// expire on its own.
		srv.log(ctx).Warn("Failed to drop verification token mirror", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Email verified", slog.Any("accountID", account.ID))

	return nil
}

// ResendVerification issues a fresh verification token for an unverified
// account. A per-email cooldown window limits how often it can run; the
// window is claimed atomically so concurrent requests cannot both pass.
func (srv *verificationService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find account by email")
	}

	if account.IsActive() {
		return domainerrors.ErrAccountAlreadyVerified
	}

	claimed, err := srv.cache.SetIfAbsent(ctx, resendCooldownKey(email), "1", srv.resendCooldown)
	if err != nil {
		return errors.Wrap(err, "failed to claim resend cooldown")
	}
	if !claimed {
		remaining := srv.resendCooldown
		if ttl, err := srv.cache.TTL(ctx, resendCooldownKey(email)); err == nil && ttl > 0 {
			remaining = ttl
		}
		minutes := int(math.Ceil(remaining.Minutes()))

		return domainerrors.ErrResendCooldown.WithMessagef(
			"Please wait %d minutes before requesting a new verification email",
			minutes)
	}

	// The cooldown is already claimed and the previous token superseded, so
	// a delivery failure is logged and the caller still gets a generic
	// success, same as registration.
	if err := srv.issueVerification(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to resend verification email", slog.String("email", email), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Verification email resent", slog.Any("accountID", account.ID))

	return nil
}

// issueVerification generates a fresh verification token, mirrors it in the
// cache under the account ID and mails it. A newer token always replaces the
// previous mirror, so only the latest emailed link stays valid.
func (srv *verificationService) issueVerification(ctx context.Context, account *entity.Account) error {
	token, ttl, err := srv.tokenService.GenerateVerificationToken(account.ID, account.Email)
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}

	if err := srv.cache.Set(ctx, verifyTokenKey(account.ID), token, ttl); err != nil {
		return errors.Wrap(err, "failed to mirror verification token")
	}

	return errors.Wrap(srv.mailer.SendVerificationEmail(ctx, account.Email, token), "failed to send verification email")
}
