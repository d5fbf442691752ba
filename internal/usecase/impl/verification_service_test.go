package impl

import (
	"context"
	"testing"
	"time"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/metrics"
	mockRepo "cinelog/internal/mocks/repository"
	mockSvc "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service     usecase.VerificationUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	mailer      *mockSvc.MockMailer
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Mailer:      mailer,
		Metrics:     metrics.New(),
		Config:      newTestOTPConfig(5*time.Minute, time.Minute),
		Logger:      newDiscardLogger(),
	})

	return verificationServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		mailer:      mailer,
	}
}

func TestVerificationService_SendActivationOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	input := &usecase.SendOTPInput{Email: account.Email}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	var storedCode string
	fx.sessionRepo.EXPECT().
		StoreOTP(ctx, account.ID, mock.AnythingOfType("*entity.OTP")).
		Run(func(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) {
			storedCode = otp.Code
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendOTP(ctx, account.Email, mock.AnythingOfType("string"), "activation").
		Return(nil)

	err := fx.service.SendActivationOTP(ctx, input)

	require.NoError(t, err)
	assert.Len(t, storedCode, 6)
}

func TestVerificationService_SendActivationOTP_Throttled(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	input := &usecase.SendOTPInput{Email: account.Email}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil).
		Twice()
	fx.sessionRepo.EXPECT().
		StoreOTP(ctx, account.ID, mock.AnythingOfType("*entity.OTP")).
		Return(nil).
		Once()
	fx.mailer.EXPECT().
		SendOTP(ctx, account.Email, mock.AnythingOfType("string"), "activation").
		Return(nil).
		Once()

	require.NoError(t, fx.service.SendActivationOTP(ctx, input))

	err := fx.service.SendActivationOTP(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpThrottled)
}

func TestVerificationService_SendActivationOTP_AlreadyActive(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	input := &usecase.SendOTPInput{Email: account.Email}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	err := fx.service.SendActivationOTP(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyActive)
}

func TestVerificationService_SendActivationOTP_MailFailure(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	input := &usecase.SendOTPInput{Email: account.Email}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)
	fx.sessionRepo.EXPECT().
		StoreOTP(ctx, account.ID, mock.AnythingOfType("*entity.OTP")).
		Return(nil)
	fx.mailer.EXPECT().
		SendOTP(ctx, account.Email, mock.AnythingOfType("string"), "activation").
		Return(assert.AnError)

	err := fx.service.SendActivationOTP(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

func confirmActivationWithSession(t *testing.T, fx verificationServiceFixtures, ctx context.Context, account *entity.Account, session *entity.Session, expectActivation bool) error {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				FindByAccountID(ctx, account.ID).
				Return(session, nil)

			if expectActivation {
				mockAccountRepo.EXPECT().
					UpdateStatus(ctx, account.ID, entity.AccountStatusActive).
					Return(nil)
				mockSessionRepo.EXPECT().
					ClearOTP(ctx, account.ID).
					Return(nil)
			}

			return fn(mockFactory)
		})

	return fx.service.ConfirmActivationOTP(ctx, &usecase.ConfirmOTPInput{Email: account.Email, OTP: "123456"})
}

func TestVerificationService_ConfirmActivationOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	session := &entity.Session{
		AccountID: account.ID,
		OTP:       &entity.OTP{Code: "123456", ExpiresAt: time.Now().Add(time.Minute)},
	}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	err := confirmActivationWithSession(t, fx, ctx, account, session, true)

	require.NoError(t, err)
}

func TestVerificationService_ConfirmActivationOTP_Mismatch(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	session := &entity.Session{
		AccountID: account.ID,
		OTP:       &entity.OTP{Code: "654321", ExpiresAt: time.Now().Add(time.Minute)},
	}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	err := confirmActivationWithSession(t, fx, ctx, account, session, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpMismatch)
}

func TestVerificationService_ConfirmActivationOTP_Expired(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	session := &entity.Session{
		AccountID: account.ID,
		OTP:       &entity.OTP{Code: "123456", ExpiresAt: time.Now().Add(-time.Minute)},
	}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	err := confirmActivationWithSession(t, fx, ctx, account, session, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpExpired)
}

func TestVerificationService_ConfirmActivationOTP_NoPendingCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	session := &entity.Session{AccountID: account.ID}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	err := confirmActivationWithSession(t, fx, ctx, account, session, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpMissing)
}

func TestVerificationService_ConfirmResetOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	session := &entity.Session{
		AccountID: account.ID,
		ResetOTP:  &entity.OTP{Code: "123456", ExpiresAt: time.Now().Add(time.Minute)},
	}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, account.Email, entity.AccountTypeLocal).
		Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				FindByAccountID(ctx, account.ID).
				Return(session, nil)
			mockSessionRepo.EXPECT().
				ClearResetOTP(ctx, account.ID).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ConfirmResetOTP(ctx, &usecase.ConfirmOTPInput{Email: account.Email, OTP: "123456"})

	require.NoError(t, err)
}

func TestVerificationService_ResetPassword_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	input := &usecase.ResetPasswordInput{AccountID: account.ID, NewPassword: "NewPassword123!"}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.accountRepo.EXPECT().UpdatePassword(ctx, account.ID, "new_hash").Return(nil)

	err := fx.service.ResetPassword(ctx, input)

	require.NoError(t, err)
}

func TestVerificationService_ResetPassword_UnknownAccount(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	input := &usecase.ResetPasswordInput{AccountID: account.ID, NewPassword: "NewPassword123!"}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.accountRepo.EXPECT().
		UpdatePassword(ctx, account.ID, "new_hash").
		Return(repository.ErrAccountNotFound)

	err := fx.service.ResetPassword(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
