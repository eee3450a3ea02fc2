// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ezstudy/internal/delivery/context"
	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/repository"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	profileRepo   repository.ProfileRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthVerifier service.OAuthVerifier
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AccountRepo   repository.AccountRepository
	ProfileRepo   repository.ProfileRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		profileRepo:   params.ProfileRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		oauthVerifier: params.OAuthVerifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lower-cases and trims an address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials runs the full credential check ladder and returns the
// authenticated identity. The checks are ordered so an attacker cannot
// distinguish an unknown email from a wrong password.
func (srv *authService) ValidateCredentials(ctx context.Context, email, password string) (*entity.CredentialIdentity, error) {
	email = normalizeEmail(email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.IsActive() {
		return nil, domainerrors.ErrAccountNotVerified
	}

	if !account.HasPassword() {
		// Google-linked account without a local password.
		return nil, domainerrors.ErrPasswordLoginUnavailable
	}

	if err := srv.hasher.Check(password, account.PasswordHash); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := srv.profileRepo.FindByAccountID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		// Every account must own a profile. A missing one is data corruption,
		// not a caller mistake.
		srv.log(ctx).Error("Account has no profile", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrProfileIntegrity
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	return &entity.CredentialIdentity{
		ProfileID: profile.ID,
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
	}, nil
}

// Login validates email/password credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	identity, err := srv.ValidateCredentials(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("email", normalizeEmail(input.Email)), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.openSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", identity.AccountID))

	return output, nil
}

// RefreshTokens rotates a valid refresh token into a new token pair. The
// presented token must both carry a valid signature and match the token
// stored on the account, so a rotated-out or logged-out token is rejected.
func (srv *authService) RefreshTokens(ctx context.Context, input usecase.RefreshInput) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	if account.RefreshToken != input.RefreshToken {
		srv.log(ctx).Warn("Stale refresh token presented", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if !account.IsActive() {
		return nil, domainerrors.ErrAccountNotVerified
	}

	profile, err := srv.profileRepo.FindByAccountID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileIntegrity
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	identity := &entity.CredentialIdentity{
		ProfileID: profile.ID,
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
	}

	return srv.openSession(ctx, identity)
}

// Logout clears the stored refresh token. A token that no longer resolves to
// an account, or that was already rotated out, is treated as a successful
// logout rather than an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find account by id")
	}

	if account.RefreshToken != refreshToken {
		return nil
	}

	if err := srv.accountRepo.UpdateRefreshToken(ctx, account.ID, ""); err != nil {
		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("Logout completed", slog.Any("accountID", account.ID))

	return nil
}

// GoogleSignIn verifies a Google ID token, then resolves the account in
// three steps: by linked Google ID, by email (linking the Google identity to
// an existing local account) and finally by provisioning a fresh account.
func (srv *authService) GoogleSignIn(ctx context.Context, input usecase.GoogleSignInInput) (*usecase.SessionOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	var identity *entity.CredentialIdentity
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity, err = srv.resolveGoogleAccount(ctx, repoFactory, oauthUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve Google account", slog.String("email", normalizeEmail(oauthUser.Email)), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.openSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Google sign-in succeeded", slog.Any("accountID", identity.AccountID))

	return output, nil
}

// resolveGoogleAccount finds or creates the account matching a verified
// Google identity. It runs inside a transaction so linking and provisioning
// are atomic.
func (srv *authService) resolveGoogleAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	oauthUser *service.OAuthUser,
) (*entity.CredentialIdentity, error) {
	accountRepo := repoFactory.AccountRepo()
	profileRepo := repoFactory.ProfileRepo()
	email := normalizeEmail(oauthUser.Email)

	// Already linked.
	account, err := accountRepo.FindByGoogleID(ctx, oauthUser.ID)
	if err == nil {
		return srv.identityFor(ctx, profileRepo, account)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by google id")
	}

	// Known email: link the Google identity and activate the account, since
	// Google has verified the address.
	account, err = accountRepo.FindByEmail(ctx, email)
	if err == nil {
		account.GoogleID = oauthUser.ID
		account.Provider = entity.ProviderGoogle
		account.Status = entity.AccountStatusActive
		if err := accountRepo.Update(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to link google identity")
		}

		profile, err := profileRepo.FindByAccountID(ctx, account.ID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileIntegrity
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find profile by account id")
		}

		if profile.AvatarURL == "" && oauthUser.AvatarURL != "" {
			profile.AvatarURL = oauthUser.AvatarURL
			if err := profileRepo.Update(ctx, profile); err != nil {
				return nil, errors.Wrap(err, "failed to update profile avatar")
			}
		}

		return identityFromPair(account, profile), nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// First contact: provision an active account with a student profile.
	account = &entity.Account{
		Email:    email,
		Provider: entity.ProviderGoogle,
		Status:   entity.AccountStatusActive,
		GoogleID: oauthUser.ID,
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create google account")
	}

	profile := &entity.Profile{
		AccountID: account.ID,
		FullName:  oauthUser.Name,
		AvatarURL: oauthUser.AvatarURL,
		Role:      entity.RoleStudent,
	}
	if profile.FullName == "" {
		profile.FullName = email
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create google profile")
	}

	return identityFromPair(account, profile), nil
}

// identityFor loads the profile for an account and builds the identity.
func (srv *authService) identityFor(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	account *entity.Account,
) (*entity.CredentialIdentity, error) {
	profile, err := profileRepo.FindByAccountID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileIntegrity
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	return identityFromPair(account, profile), nil
}

func identityFromPair(account *entity.Account, profile *entity.Profile) *entity.CredentialIdentity {
	return &entity.CredentialIdentity{
		ProfileID: profile.ID,
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
	}
}

// openSession issues a token pair and persists the new refresh token on the
// account, rotating out whatever token was stored before.
func (srv *authService) openSession(ctx context.Context, identity *entity.CredentialIdentity) (*usecase.SessionOutput, error) {
	pair, err := srv.tokenService.GenerateTokenPair(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	if err := srv.accountRepo.UpdateRefreshToken(ctx, identity.AccountID, pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	if err := srv.accountRepo.UpdateLastLogin(ctx, identity.AccountID, time.Now()); err != nil {
		// Session material is already issued; an unrecorded login timestamp
		// is not worth failing the request over.
		srv.log(ctx).Warn("Failed to record last login", slog.Any("accountID", identity.AccountID), slog.Any("error", err))
	}

	return &usecase.SessionOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		Identity:     identity,
	}, nil
}
