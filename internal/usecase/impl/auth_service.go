package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultTokenType = "bearer"

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Provider  service.OAuthProvider
	Cipher    service.TokenCipher
	Sessions  usecase.SessionUsecase
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// authService implements the OAuth exchange flow.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	provider  service.OAuthProvider
	cipher    service.TokenCipher
	sessions  usecase.SessionUsecase
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params, time.Now)
}

func newAuthService(params AuthServiceParams, now func() time.Time) *authService {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		provider:  params.Provider,
		cipher:    params.Cipher,
		sessions:  params.Sessions,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginURL returns the Meta consent dialog URL.
func (srv *authService) LoginURL(state string) string {
	return srv.provider.AuthCodeURL(state)
}

// HandleCallback runs the exchange. Failures before the transaction leave storage untouched;
// failures inside it roll back both the user upsert and the credential replacement.
func (srv *authService) HandleCallback(ctx context.Context, input usecase.CallbackInput) (*usecase.CallbackResult, error) {
	result, err := srv.handleCallback(ctx, input)
	if err != nil {
		outcome := service.OutcomeFailure
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			outcome = appErr.ErrorCode()
		}
		srv.metrics.ObserveOAuthExchange(outcome)
		srv.log(ctx).Warn("OAuth callback failed", slog.String("outcome", outcome), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ObserveOAuthExchange(service.OutcomeSuccess)

	return result, nil
}

func (srv *authService) handleCallback(ctx context.Context, input usecase.CallbackInput) (*usecase.CallbackResult, error) {
	if input.Error != "" {
		return nil, domainerrors.ErrAuthorizationDenied.WithDetails(input.Error)
	}
	if input.Code == "" {
		return nil, domainerrors.ErrAuthorizationDenied.WithDetails("no_code")
	}
	if input.ExpectedState == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return nil, domainerrors.ErrInvalidState
	}

	token, err := srv.provider.Exchange(ctx, input.Code)
	if err != nil {
		return nil, domainerrors.ErrTokenExchange.WithCause(err)
	}
	if token == nil || token.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchange.WithDetails("missing access token")
	}

	identity, err := srv.provider.FetchIdentity(ctx, token.AccessToken)
	if err != nil {
		return nil, domainerrors.ErrIdentityFetch.WithCause(err)
	}
	if identity == nil || identity.ID == "" {
		return nil, domainerrors.ErrIdentityFetch.WithDetails("missing identity id")
	}

	user, err := srv.persistExchange(ctx, identity, token)
	if err != nil {
		return nil, domainerrors.ErrExchangeTransaction.WithCause(err)
	}

	session, err := srv.sessions.Establish(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session")
	}

	srv.log(ctx).Info("Meta account connected", slog.String("user_id", user.ID.String()))
	srv.publish(ctx, &service.AccountEvent{
		Type:       service.EventUserConnected,
		UserID:     user.ID.String(),
		MetaUserID: user.MetaUserID,
		OccurredAt: user.UpdatedAt,
	})

	return &usecase.CallbackResult{User: user, Session: session}, nil
}

// persistExchange upserts the user and replaces its credential in one transaction.
func (srv *authService) persistExchange(ctx context.Context, identity *entity.MetaIdentity, token *entity.OAuthToken) (*entity.User, error) {
	now := srv.now().UTC()

	var expiresAt *time.Time
	if token.ExpiresIn > 0 {
		expiry := now.Add(token.ExpiresIn)
		expiresAt = &expiry
	}

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		credentialRepo := repoFactory.NewCredentialRepository()

		existing, err := userRepo.FindByMetaUserID(ctx, identity.ID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate user id")
			}
			user = &entity.User{
				ID:         id,
				MetaUserID: identity.ID,
				Name:       identity.Name,
				Email:      identity.Email,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
		case err != nil:
			return errors.Wrap(err, "failed to find user")
		default:
			existing.Name = identity.Name
			existing.Email = identity.Email
			existing.UpdatedAt = now
			if err := userRepo.UpdateProfile(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update user")
			}
			user = existing
		}

		encrypted, err := srv.cipher.Encrypt(token.AccessToken)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt access token")
		}

		credential := &entity.Credential{
			UserID:         user.ID,
			EncryptedToken: encrypted,
			TokenType:      tokenType,
			ExpiresAt:      expiresAt,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := credentialRepo.ReplaceForUser(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to replace credential")
		}

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // classified by the caller
	}

	return user, nil
}

// CurrentUser returns the stored profile of the user.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) publish(ctx context.Context, event *service.AccountEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishAccountEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event", slog.String("type", event.Type), slog.Any("error", err))
	}
}
