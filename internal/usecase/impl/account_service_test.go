package impl

import (
	"context"
	"testing"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/metrics"
	mockRepo "cinelog/internal/mocks/repository"
	mockSvc "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *mockRepo.MockTransactionManager
	accountRepo    *mockRepo.MockAccountRepository
	sessionRepo    *mockRepo.MockSessionRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	googleVerifier *mockSvc.MockGoogleVerifier
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleVerifier := mockSvc.NewMockGoogleVerifier(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		AccountRepo:    accountRepo,
		SessionRepo:    sessionRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		GoogleVerifier: googleVerifier,
		Metrics:        metrics.New(),
		Logger:         newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:        svc,
		txManager:      txManager,
		accountRepo:    accountRepo,
		sessionRepo:    sessionRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		googleVerifier: googleVerifier,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "newcomer",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrAccountNotFound)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(&entity.Session{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, entity.AccountStatusInactive, output.Account.Status)
	assert.Equal(t, entity.AccountTypeLocal, output.Account.Type)
	assert.Empty(t, output.Account.Password)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "newcomer",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
				Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	input := &usecase.LoginInput{Email: account.Email, Password: "Password123!"}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.Password).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(account).Return("access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account).Return("refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				UpdateRefreshToken(ctx, account.ID, "refresh_token").
				Return(nil)
			mockSessionRepo.EXPECT().
				AppendLogin(ctx, account.ID, "refresh_token").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Empty(t, output.Account.RefreshToken)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	input := &usecase.LoginInput{Email: account.Email, Password: "wrong"}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.Password).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newInactiveLocalAccount()
	input := &usecase.LoginInput{Email: account.Email, Password: "Password123!"}

	fx.accountRepo.EXPECT().
		FindByEmailAndType(ctx, input.Email, entity.AccountTypeLocal).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.Password).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAccountService_Logout_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				UpdateRefreshToken(ctx, accountID, "").
				Return(nil)
			mockSessionRepo.EXPECT().
				MarkLoggedOut(ctx, accountID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, accountID)

	require.NoError(t, err)
}

func TestAccountService_Refresh_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	account.RefreshToken = "old_refresh"
	input := &usecase.RefreshInput{AccountID: account.ID, RefreshToken: "old_refresh"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("old_refresh").
		Return(&service.RefreshClaims{ID: account.ID}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(account).Return("new_access", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account).Return("new_refresh", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				SwapRefreshToken(ctx, account.ID, "old_refresh", "new_refresh").
				Return(true, nil)
			mockSessionRepo.EXPECT().
				RotateRefreshToken(ctx, account.ID, "new_refresh").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAccountService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "stale"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("stale").
		Return(nil, service.ErrTokenExpired)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAccountService_Refresh_MalformedToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("garbage").
		Return(nil, service.ErrTokenMalformed)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccountService_Refresh_ReplayedOldToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	account.RefreshToken = "current_refresh"
	input := &usecase.RefreshInput{AccountID: account.ID, RefreshToken: "previous_refresh"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("previous_refresh").
		Return(&service.RefreshClaims{ID: account.ID}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAccountService_Refresh_ConcurrentRotationLoses(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	account.RefreshToken = "old_refresh"
	input := &usecase.RefreshInput{AccountID: account.ID, RefreshToken: "old_refresh"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("old_refresh").
		Return(&service.RefreshClaims{ID: account.ID}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(account).Return("new_access", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account).Return("new_refresh", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			// Another request rotated the token between the read and the swap.
			mockAccountRepo.EXPECT().
				SwapRefreshToken(ctx, account.ID, "old_refresh", "new_refresh").
				Return(false, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAccountService_GoogleVerify_NewAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	googleUser := &service.GoogleUser{
		Subject:       "118200000000000000001",
		Email:         "viewer@gmail.com",
		Name:          "Viewer",
		EmailVerified: true,
	}
	input := &usecase.GoogleVerifyInput{IDToken: "google_id_token"}

	fx.googleVerifier.EXPECT().VerifyIDToken(ctx, input.IDToken).Return(googleUser, nil)
	fx.hasher.EXPECT().Hash(googleUser.Subject).Return("hashed_subject", nil)

	var created *entity.Account

	// First transaction resolves the account, second persists the login.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				FindByEmailAndType(ctx, googleUser.Email, entity.AccountTypeGoogle).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
					created = account
				}).
				Return(nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(&entity.Session{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("*entity.Account")).
		Return("access_token", nil)
	fx.tokenService.EXPECT().
		GenerateRefreshToken(mock.AnythingOfType("*entity.Account")).
		Return("refresh_token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				UpdateRefreshToken(ctx, mock.AnythingOfType("uuid.UUID"), "refresh_token").
				Return(nil)
			mockSessionRepo.EXPECT().
				AppendLogin(ctx, mock.AnythingOfType("uuid.UUID"), "refresh_token").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	output, err := fx.service.GoogleVerify(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.AccountTypeGoogle, created.Type)
	assert.Equal(t, entity.AccountStatusActive, created.Status)
	assert.Equal(t, "viewer", created.Username)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAccountService_GoogleVerify_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.GoogleVerifyInput{IDToken: "forged"}

	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, input.IDToken).
		Return(nil, assert.AnError)

	output, err := fx.service.GoogleVerify(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestAccountService_Profile_FiltersCredentials(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := newActiveLocalAccount()
	account.RefreshToken = "refresh_token"

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	profile, err := fx.service.Profile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.Email, profile.Email)
	assert.Empty(t, profile.Password)
	assert.Empty(t, profile.RefreshToken)
}

func TestAccountService_Profile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	profile, err := fx.service.Profile(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
