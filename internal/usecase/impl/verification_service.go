package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cinelog/config"
	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/metrics"
	"cinelog/internal/usecase"
	"cinelog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultOTPTTL          = 5 * time.Minute
	defaultOTPSendInterval = time.Minute

	purposeActivation    = "activation"
	purposePasswordReset = "password reset"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	mailer      service.Mailer
	metrics     *metrics.Metrics
	otpTTL      time.Duration
	logger      *slog.Logger

	// Per-address send throttle, kept in memory. A restart resets it,
	// which only lets a code through earlier than configured.
	limiterMu    sync.Mutex
	limiters     map[string]*rate.Limiter
	sendInterval time.Duration
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Mailer      service.Mailer
	Metrics     *metrics.Metrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	otpTTL := defaultOTPTTL
	sendInterval := defaultOTPSendInterval
	if params.Config != nil && params.Config.OTP != nil {
		if params.Config.OTP.TTL > 0 {
			otpTTL = params.Config.OTP.TTL
		}
		if params.Config.OTP.SendInterval > 0 {
			sendInterval = params.Config.OTP.SendInterval
		}
	}

	return &verificationService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		mailer:       params.Mailer,
		metrics:      params.Metrics,
		otpTTL:       otpTTL,
		logger:       params.Logger,
		limiters:     make(map[string]*rate.Limiter),
		sendInterval: sendInterval,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// allowSend reports whether another code may be mailed to the address yet.
func (srv *verificationService) allowSend(email string) bool {
	srv.limiterMu.Lock()
	defer srv.limiterMu.Unlock()

	limiter, ok := srv.limiters[email]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(srv.sendInterval), 1)
		srv.limiters[email] = limiter
	}

	return limiter.Allow()
}

// SendActivationOTP mails a fresh activation code and stores it on the session.
func (srv *verificationService) SendActivationOTP(ctx context.Context, input *usecase.SendOTPInput) error {
	srv.log(ctx).Info("Sending activation code", slog.String("email", input.Email))

	account, err := srv.loadLocalAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	if account.IsActive() {
		return errors.Wrap(domainerrors.ErrAccountAlreadyActive, "activation code not needed")
	}

	return srv.issueOTP(ctx, account, purposeActivation, srv.sessionRepo.StoreOTP)
}

// SendResetOTP mails a fresh password-reset code.
func (srv *verificationService) SendResetOTP(ctx context.Context, input *usecase.SendOTPInput) error {
	srv.log(ctx).Info("Sending password-reset code", slog.String("email", input.Email))

	account, err := srv.loadLocalAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	return srv.issueOTP(ctx, account, purposePasswordReset, srv.sessionRepo.StoreResetOTP)
}

type storeOTPFunc func(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) error

// issueOTP draws a code, persists it and mails it out. The code is
// persisted before sending so a delivery retry never invalidates it.
func (srv *verificationService) issueOTP(ctx context.Context, account *entity.Account, purpose string, store storeOTPFunc) error {
	if !srv.allowSend(account.Email) {
		srv.log(ctx).Warn("Verification code throttled", slog.String("email", account.Email))

		return errors.Wrap(domainerrors.ErrOtpThrottled, "verification code requested too soon")
	}

	code, err := util.GenerateOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	otp := &entity.OTP{
		Code:      code,
		ExpiresAt: time.Now().Add(srv.otpTTL),
	}

	if err := store(ctx, account.ID, otp); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "no session to attach the code to")
		}

		return errors.Wrap(err, "failed to store verification code")
	}

	if err := srv.mailer.SendOTP(ctx, account.Email, code, purpose); err != nil {
		srv.log(ctx).Error("Failed to mail verification code", slog.String("email", account.Email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, "failed to mail verification code")
	}

	srv.metrics.OTPIssued.Inc()
	srv.log(ctx).Debug("Verification code mailed", slog.Any("accountID", account.ID), slog.String("purpose", purpose))

	return nil
}

// ConfirmActivationOTP checks the code and flips the account to active.
func (srv *verificationService) ConfirmActivationOTP(ctx context.Context, input *usecase.ConfirmOTPInput) error {
	srv.log(ctx).Info("Confirming activation code", slog.String("email", input.Email))

	account, err := srv.loadLocalAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	if account.IsActive() {
		return errors.Wrap(domainerrors.ErrAccountAlreadyActive, "account already activated")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := srv.loadSession(ctx, sessionRepo, account.ID)
		if err != nil {
			return err
		}

		if err := checkOTP(session.OTP, input.OTP); err != nil {
			return err
		}

		if err := accountRepo.UpdateStatus(ctx, account.ID, entity.AccountStatusActive); err != nil {
			return errors.Wrap(err, "failed to activate account")
		}

		if err := sessionRepo.ClearOTP(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to clear activation code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Activation failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute activation transaction")
	}

	srv.log(ctx).Info("Account activated", slog.Any("accountID", account.ID))

	return nil
}

// ConfirmResetOTP checks the password-reset code without consuming the account state.
func (srv *verificationService) ConfirmResetOTP(ctx context.Context, input *usecase.ConfirmOTPInput) error {
	srv.log(ctx).Info("Confirming password-reset code", slog.String("email", input.Email))

	account, err := srv.loadLocalAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := srv.loadSession(ctx, sessionRepo, account.ID)
		if err != nil {
			return err
		}

		if err := checkOTP(session.ResetOTP, input.OTP); err != nil {
			return err
		}

		if err := sessionRepo.ClearResetOTP(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to clear password-reset code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password-reset confirmation failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password-reset confirmation transaction")
	}

	return nil
}

// ResetPassword re-hashes and stores the new password for the caller.
func (srv *verificationService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Resetting password", slog.Any("accountID", input.AccountID))

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	if err := srv.accountRepo.UpdatePassword(ctx, input.AccountID, hashed); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "password reset failed")
		}

		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", input.AccountID))

	return nil
}

func (srv *verificationService) loadLocalAccount(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmailAndType(ctx, email, entity.AccountTypeLocal)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "no account for this email")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

func (srv *verificationService) loadSession(ctx context.Context, sessionRepo repository.SessionRepository, accountID uuid.UUID) (*entity.Session, error) {
	session, err := sessionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "no session for this account")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// checkOTP validates a presented code against the stored one. Order
// matters: a missing code is a state error, a wrong code is rejected
// before expiry is considered.
func checkOTP(stored *entity.OTP, presented string) error {
	if stored == nil {
		return errors.Wrap(domainerrors.ErrOtpMissing, "no pending verification code")
	}
	if !stored.Matches(presented) {
		return errors.Wrap(domainerrors.ErrOtpMismatch, "verification code mismatch")
	}
	if stored.Expired(time.Now()) {
		return errors.Wrap(domainerrors.ErrOtpExpired, "verification code expired")
	}

	return nil
}
