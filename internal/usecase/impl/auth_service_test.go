package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
	mockRepo "adchecker/internal/mocks/repository"
	mockService "adchecker/internal/mocks/service"
	mockUsecase "adchecker/internal/mocks/usecase"
	"adchecker/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	provider  *mockService.MockOAuthProvider
	cipher    *mockService.MockTokenCipher
	sessions  *mockUsecase.MockSessionUsecase
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockMetricsRecorder
}

func newTestAuthService(t *testing.T, now time.Time) (*authService, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		provider:  mockService.NewMockOAuthProvider(t),
		cipher:    mockService.NewMockTokenCipher(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		publisher: mockService.NewMockEventPublisher(t),
		metrics:   mockService.NewMockMetricsRecorder(t),
	}

	srv := newAuthService(AuthServiceParams{
		TxManager: m.txManager,
		UserRepo:  m.userRepo,
		Provider:  m.provider,
		Cipher:    m.cipher,
		Sessions:  m.sessions,
		Publisher: m.publisher,
		Metrics:   m.metrics,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, func() time.Time { return now })

	return srv, m
}

// runTx makes the transaction manager invoke fn with repositories built by the factory.
func runTx(t *testing.T, m *authServiceMocks, txUserRepo *mockRepo.MockUserRepository, txCredRepo *mockRepo.MockCredentialRepository) {
	t.Helper()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewCredentialRepository().Return(txCredRepo)

			return fn(factory)
		})
}

func validInput() usecase.CallbackInput {
	return usecase.CallbackInput{Code: "auth-code", State: "state-123", ExpectedState: "state-123"}
}

func TestAuthService_LoginURL(t *testing.T) {
	srv, m := newTestAuthService(t, time.Now())
	m.provider.EXPECT().AuthCodeURL("abc").Return("https://www.facebook.com/v18.0/dialog/oauth?state=abc")

	assert.Equal(t, "https://www.facebook.com/v18.0/dialog/oauth?state=abc", srv.LoginURL("abc"))
}

func TestAuthService_HandleCallback_NewUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	srv, m := newTestAuthService(t, now)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredRepo := mockRepo.NewMockCredentialRepository(t)
	session := &entity.SessionToken{Value: "jwt", ExpiresAt: now.Add(24 * time.Hour)}

	m.provider.EXPECT().Exchange(ctx, "auth-code").
		Return(&entity.OAuthToken{AccessToken: "EAAB", TokenType: "bearer", ExpiresIn: time.Hour}, nil)
	m.provider.EXPECT().FetchIdentity(ctx, "EAAB").
		Return(&entity.MetaIdentity{ID: "10001", Name: "Ada", Email: "ada@example.com"}, nil)
	runTx(t, m, txUserRepo, txCredRepo)
	txUserRepo.EXPECT().FindByMetaUserID(ctx, "10001").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID != uuid.Nil && u.ID.Version() == 7 && u.MetaUserID == "10001" && u.Name == "Ada" && u.CreatedAt.Equal(now)
	})).Return(nil)
	m.cipher.EXPECT().Encrypt("EAAB").Return("sealed", nil)
	txCredRepo.EXPECT().ReplaceForUser(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.EncryptedToken == "sealed" && c.TokenType == "bearer" &&
			c.ExpiresAt != nil && c.ExpiresAt.Equal(now.Add(time.Hour))
	})).Return(nil)
	m.sessions.EXPECT().Establish(ctx, mock.AnythingOfType("uuid.UUID")).Return(session, nil)
	m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == service.EventUserConnected && e.MetaUserID == "10001"
	})).Return(nil)
	m.metrics.EXPECT().ObserveOAuthExchange(service.OutcomeSuccess).Return()

	result, err := srv.HandleCallback(ctx, validInput())

	require.NoError(t, err)
	assert.Equal(t, "10001", result.User.MetaUserID)
	assert.Equal(t, "ada@example.com", result.User.Email)
	assert.Equal(t, session, result.Session)
}

func TestAuthService_HandleCallback_ExistingUserUpdated(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	srv, m := newTestAuthService(t, now)
	ctx := context.Background()

	existingID := uuid.New()
	existing := &entity.User{
		ID:         existingID,
		MetaUserID: "10001",
		Name:       "Old Name",
		CreatedAt:  now.Add(-48 * time.Hour),
		UpdatedAt:  now.Add(-48 * time.Hour),
	}
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredRepo := mockRepo.NewMockCredentialRepository(t)

	m.provider.EXPECT().Exchange(ctx, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
	m.provider.EXPECT().FetchIdentity(ctx, "EAAB").
		Return(&entity.MetaIdentity{ID: "10001", Name: "New Name"}, nil)
	runTx(t, m, txUserRepo, txCredRepo)
	txUserRepo.EXPECT().FindByMetaUserID(ctx, "10001").Return(existing, nil)
	txUserRepo.EXPECT().UpdateProfile(ctx, existing).Return(nil)
	m.cipher.EXPECT().Encrypt("EAAB").Return("sealed", nil)
	txCredRepo.EXPECT().ReplaceForUser(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.UserID == existingID && c.TokenType == "bearer" && c.ExpiresAt == nil
	})).Return(nil)
	m.sessions.EXPECT().Establish(ctx, existingID).Return(&entity.SessionToken{Value: "jwt"}, nil)
	m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil)
	m.metrics.EXPECT().ObserveOAuthExchange(service.OutcomeSuccess).Return()

	result, err := srv.HandleCallback(ctx, validInput())

	require.NoError(t, err)
	assert.Equal(t, existingID, result.User.ID)
	assert.Equal(t, "New Name", result.User.Name)
	assert.Empty(t, result.User.Email)
	assert.Equal(t, now, result.User.UpdatedAt)
	assert.Equal(t, now.Add(-48*time.Hour), result.User.CreatedAt)
}

func TestAuthService_HandleCallback_RejectedBeforeExchange(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CallbackInput
		wantErr     error
		wantDetails string
	}{
		{
			name:        "provider error",
			input:       usecase.CallbackInput{Error: "access_denied", State: "s", ExpectedState: "s"},
			wantErr:     domainerrors.ErrAuthorizationDenied,
			wantDetails: "access_denied",
		},
		{
			name:        "missing code",
			input:       usecase.CallbackInput{State: "s", ExpectedState: "s"},
			wantErr:     domainerrors.ErrAuthorizationDenied,
			wantDetails: "no_code",
		},
		{
			name:    "state mismatch",
			input:   usecase.CallbackInput{Code: "c", State: "attacker", ExpectedState: "s"},
			wantErr: domainerrors.ErrInvalidState,
		},
		{
			name:    "no state cookie",
			input:   usecase.CallbackInput{Code: "c", State: "s"},
			wantErr: domainerrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestAuthService(t, time.Now())
			code := tt.wantErr.(domainerrors.AppError).ErrorCode()
			m.metrics.EXPECT().ObserveOAuthExchange(code).Return()

			result, err := srv.HandleCallback(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr))
			if tt.wantDetails != "" {
				appErr, ok := errors.AsType[domainerrors.AppError](err)
				require.True(t, ok)
				assert.Equal(t, tt.wantDetails, appErr.Details())
			}
			m.provider.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_HandleCallback_ExchangeFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *authServiceMocks)
		wantErr *domainerrors.BaseError
	}{
		{
			name: "token exchange error",
			setup: func(m *authServiceMocks) {
				m.provider.EXPECT().Exchange(mock.Anything, "auth-code").Return(nil, errors.New("invalid code"))
			},
			wantErr: domainerrors.ErrTokenExchange,
		},
		{
			name: "token response without access token",
			setup: func(m *authServiceMocks) {
				m.provider.EXPECT().Exchange(mock.Anything, "auth-code").Return(&entity.OAuthToken{}, nil)
			},
			wantErr: domainerrors.ErrTokenExchange,
		},
		{
			name: "identity fetch error",
			setup: func(m *authServiceMocks) {
				m.provider.EXPECT().Exchange(mock.Anything, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
				m.provider.EXPECT().FetchIdentity(mock.Anything, "EAAB").Return(nil, domainerrors.ErrUpstream)
			},
			wantErr: domainerrors.ErrIdentityFetch,
		},
		{
			name: "identity without id",
			setup: func(m *authServiceMocks) {
				m.provider.EXPECT().Exchange(mock.Anything, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
				m.provider.EXPECT().FetchIdentity(mock.Anything, "EAAB").Return(&entity.MetaIdentity{Name: "x"}, nil)
			},
			wantErr: domainerrors.ErrIdentityFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestAuthService(t, time.Now())
			tt.setup(m)
			m.metrics.EXPECT().ObserveOAuthExchange(tt.wantErr.ErrorCode()).Return()

			_, err := srv.HandleCallback(context.Background(), validInput())

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			m.sessions.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_HandleCallback_TransactionFailure(t *testing.T) {
	srv, m := newTestAuthService(t, time.Now())
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredRepo := mockRepo.NewMockCredentialRepository(t)
	replaceErr := errors.New("insert into user_tokens failed")

	m.provider.EXPECT().Exchange(ctx, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
	m.provider.EXPECT().FetchIdentity(ctx, "EAAB").Return(&entity.MetaIdentity{ID: "10001", Name: "Ada"}, nil)
	runTx(t, m, txUserRepo, txCredRepo)
	txUserRepo.EXPECT().FindByMetaUserID(ctx, "10001").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cipher.EXPECT().Encrypt("EAAB").Return("sealed", nil)
	txCredRepo.EXPECT().ReplaceForUser(ctx, mock.Anything).Return(replaceErr)
	m.metrics.EXPECT().ObserveOAuthExchange("EXCHANGE_TRANSACTION_FAILED").Return()

	_, err := srv.HandleCallback(ctx, validInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeTransaction))
	assert.True(t, errors.Is(err, replaceErr))
	m.sessions.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAuthService_HandleCallback_EncryptFailureAbortsTransaction(t *testing.T) {
	srv, m := newTestAuthService(t, time.Now())
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredRepo := mockRepo.NewMockCredentialRepository(t)

	m.provider.EXPECT().Exchange(ctx, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
	m.provider.EXPECT().FetchIdentity(ctx, "EAAB").Return(&entity.MetaIdentity{ID: "10001"}, nil)
	runTx(t, m, txUserRepo, txCredRepo)
	txUserRepo.EXPECT().FindByMetaUserID(ctx, "10001").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cipher.EXPECT().Encrypt("EAAB").Return("", errors.New("cipher unavailable"))
	m.metrics.EXPECT().ObserveOAuthExchange("EXCHANGE_TRANSACTION_FAILED").Return()

	_, err := srv.HandleCallback(ctx, validInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeTransaction))
	txCredRepo.AssertNotCalled(t, "ReplaceForUser", mock.Anything, mock.Anything)
}

func TestAuthService_HandleCallback_SessionFailure(t *testing.T) {
	srv, m := newTestAuthService(t, time.Now())
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredRepo := mockRepo.NewMockCredentialRepository(t)

	m.provider.EXPECT().Exchange(ctx, "auth-code").Return(&entity.OAuthToken{AccessToken: "EAAB"}, nil)
	m.provider.EXPECT().FetchIdentity(ctx, "EAAB").Return(&entity.MetaIdentity{ID: "10001"}, nil)
	runTx(t, m, txUserRepo, txCredRepo)
	txUserRepo.EXPECT().FindByMetaUserID(ctx, "10001").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cipher.EXPECT().Encrypt("EAAB").Return("sealed", nil)
	txCredRepo.EXPECT().ReplaceForUser(ctx, mock.Anything).Return(nil)
	m.sessions.EXPECT().Establish(ctx, mock.Anything).Return(nil, errors.New("session store down"))
	m.metrics.EXPECT().ObserveOAuthExchange(service.OutcomeFailure).Return()

	_, err := srv.HandleCallback(ctx, validInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to establish session")
}

func TestAuthService_CurrentUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		srv, m := newTestAuthService(t, time.Now())
		m.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, MetaUserID: "1"}, nil)

		user, err := srv.CurrentUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "1", user.MetaUserID)
	})

	t.Run("missing", func(t *testing.T) {
		srv, m := newTestAuthService(t, time.Now())
		m.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.CurrentUser(context.Background(), userID)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
