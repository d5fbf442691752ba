// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/metrics"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	sessionRepo    repository.SessionRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	googleVerifier service.GoogleVerifier
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	SessionRepo    repository.SessionRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	GoogleVerifier service.GoogleVerifier
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		sessionRepo:    params.SessionRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		googleVerifier: params.GoogleVerifier,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive local account together with its session.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Email:    input.Email,
		Username: input.Username,
		Password: hashedPassword,
		Fullname: input.Fullname,
		Address:  input.Address,
		Role:     entity.RoleUser,
		Status:   entity.AccountStatusInactive,
		Type:     entity.AccountTypeLocal,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		if err := srv.checkRegistrationConflicts(ctx, accountRepo, input.Email, input.Username); err != nil {
			return err
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrDuplicateAccount) {
				return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "account creation raced with another registration")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		if _, err := sessionRepo.Create(ctx, newAccount.ID); err != nil {
			return errors.Wrap(err, "failed to create session during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.metrics.Registrations.Inc()
	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: newAccount.Filtered()}, nil
}

// checkRegistrationConflicts rejects the registration when the email is
// already taken by a local account or the username is taken by anyone.
func (srv *accountService) checkRegistrationConflicts(ctx context.Context, accountRepo repository.AccountRepository, email, username string) error {
	_, err := accountRepo.FindByEmailAndType(ctx, email, entity.AccountTypeLocal)
	if err == nil {
		return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	_, err = accountRepo.FindByUsername(ctx, username)
	if err == nil {
		return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "username already taken")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// Login authenticates a local account and issues a token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !account.IsActive() {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	output, err := srv.issueAndPersistTokens(ctx, account)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.Logins.Inc()
	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return output, nil
}

// issueAndPersistTokens generates a fresh token pair, stores the refresh
// token on the account and appends a login history row.
func (srv *accountService) issueAndPersistTokens(ctx context.Context, account *entity.Account) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		if err := accountRepo.UpdateRefreshToken(ctx, account.ID, refreshToken); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		if err := srv.appendLoginWithSession(ctx, sessionRepo, account.ID, refreshToken); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account.Filtered(),
	}, nil
}

// appendLoginWithSession records a login, creating the session record
// first for accounts that predate session tracking.
func (srv *accountService) appendLoginWithSession(ctx context.Context, sessionRepo repository.SessionRepository, accountID uuid.UUID, refreshToken string) error {
	err := sessionRepo.AppendLogin(ctx, accountID, refreshToken)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to append login history")
	}

	if _, err := sessionRepo.Create(ctx, accountID); err != nil && !errors.Is(err, repository.ErrSessionExists) {
		return errors.Wrap(err, "failed to create missing session")
	}

	if err := sessionRepo.AppendLogin(ctx, accountID, refreshToken); err != nil {
		return errors.Wrap(err, "failed to append login history")
	}

	return nil
}

// Logout clears the stored refresh token and closes the open login.
func (srv *accountService) Logout(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		if err := accountRepo.UpdateRefreshToken(ctx, accountID, ""); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "logout failed")
			}

			return errors.Wrap(err, "failed to clear refresh token")
		}

		if err := sessionRepo.MarkLoggedOut(ctx, accountID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to close login history")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}

	srv.log(ctx).Info("Successfully logged out", slog.Any("accountID", accountID))

	return nil
}

// Refresh rotates the refresh token and issues a new pair. The presented
// token must match the stored one exactly; on a concurrent refresh only
// one caller wins the swap and the loser is rejected.
func (srv *accountService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to refresh token pair", slog.Any("accountID", input.AccountID))

	claims, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "refresh token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token rejected")
	}

	if input.AccountID != uuid.Nil && claims.ID != input.AccountID {
		srv.log(ctx).Warn("Refresh token does not belong to caller", slog.Any("accountID", input.AccountID))

		return nil, errors.Wrap(domainerrors.ErrAccessDenied, "refresh token does not belong to caller")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccessDenied, "refresh rejected for unknown account")
		}

		return nil, errors.Wrap(err, "failed to load account for refresh")
	}

	// Only the token currently on record may be exchanged. An older token
	// from a previous rotation is treated as a replay.
	if account.RefreshToken == "" || account.RefreshToken != input.RefreshToken {
		srv.log(ctx).Warn("Presented refresh token does not match the stored one", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccessDenied, "refresh token mismatch")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	newRefreshToken, err := srv.tokenService.GenerateRefreshToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		swapped, err := accountRepo.SwapRefreshToken(ctx, account.ID, input.RefreshToken, newRefreshToken)
		if err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}
		if !swapped {
			return errors.Wrap(domainerrors.ErrAccessDenied, "refresh token already rotated by a concurrent request")
		}

		if err := sessionRepo.RotateRefreshToken(ctx, account.ID, newRefreshToken); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to rotate session history token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh transaction", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	srv.metrics.TokenRefreshes.Inc()
	srv.log(ctx).Debug("Refreshed token pair", slog.Any("accountID", account.ID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Account:      account.Filtered(),
	}, nil
}

// GoogleVerify signs a Google user in, creating the account on first contact.
func (srv *accountService) GoogleVerify(ctx context.Context, input *usecase.GoogleVerifyInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	googleUser, err := srv.googleVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, "failed to verify Google ID token")
	}

	account, err := srv.findOrCreateGoogleAccount(ctx, googleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve Google account")
	}

	output, err := srv.issueAndPersistTokens(ctx, account)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.Logins.Inc()
	srv.log(ctx).Debug("Google sign-in completed", slog.Any("accountID", account.ID))

	return output, nil
}

// findOrCreateGoogleAccount loads the Google-typed account for the
// asserted email, creating it together with its session on first contact.
func (srv *accountService) findOrCreateGoogleAccount(ctx context.Context, googleUser *service.GoogleUser) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		existing, err := accountRepo.FindByEmailAndType(ctx, googleUser.Email, entity.AccountTypeGoogle)
		if err == nil {
			account = existing

			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up Google account")
		}

		srv.log(ctx).Info("Google account not found, creating new account", slog.String("email", googleUser.Email))

		created, err := srv.createGoogleAccount(ctx, accountRepo, googleUser)
		if err != nil {
			return err
		}

		if _, err := sessionRepo.Create(ctx, created.ID); err != nil {
			return errors.Wrap(err, "failed to create session for Google account")
		}

		account = created
		srv.metrics.Registrations.Inc()

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google account transaction")
	}

	return account, nil
}

func (srv *accountService) createGoogleAccount(ctx context.Context, accountRepo repository.AccountRepository, googleUser *service.GoogleUser) (*entity.Account, error) {
	// Google accounts never authenticate with a password. The hashed
	// subject fills the column so the credential path stays uniform.
	surrogate, err := srv.hasher.Hash(googleUser.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash surrogate credential")
	}

	newAccount := &entity.Account{
		Email:    googleUser.Email,
		Username: googleUsername(googleUser),
		Password: surrogate,
		Fullname: googleUser.Name,
		Role:     entity.RoleUser,
		Status:   entity.AccountStatusActive,
		Type:     entity.AccountTypeGoogle,
	}

	if err := accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			// Username collision with an unrelated account. Retry once with
			// a suffix derived from the stable Google subject.
			newAccount.Username = newAccount.Username + "-" + shortSubject(googleUser.Subject)
			if retryErr := accountRepo.Create(ctx, newAccount); retryErr == nil {
				return newAccount, nil
			}
		}

		return nil, errors.Wrap(err, "failed to create Google account")
	}

	return newAccount, nil
}

// googleUsername derives a display handle from the verified email.
func googleUsername(googleUser *service.GoogleUser) string {
	local, _, found := strings.Cut(googleUser.Email, "@")
	if !found || local == "" {
		return "google-" + shortSubject(googleUser.Subject)
	}

	return local
}

func shortSubject(subject string) string {
	const maxLen = 8
	if len(subject) <= maxLen {
		return subject
	}

	return subject[len(subject)-maxLen:]
}

// Profile returns the filtered account of the authenticated caller.
func (srv *accountService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	srv.log(ctx).Debug("Loading profile", slog.Any("accountID", accountID))

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load account profile")
	}

	return account.Filtered(), nil
}
