// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo  repository.SessionRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return newSessionService(params, time.Now)
}

func newSessionService(params SessionServiceParams, now func() time.Time) *sessionService {
	return &sessionService{
		sessionRepo:  params.SessionRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Establish opens a new session with an absolute 24h lifetime.
func (srv *sessionService) Establish(ctx context.Context, userID uuid.UUID) (*entity.SessionToken, error) {
	now := srv.now().UTC()
	session := &entity.Session{
		ID:        ulid.Make().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(entity.SessionLifetime),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	signed, err := srv.tokenService.GenerateSessionToken(session.ID, userID, session.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.cleanup(ctx)
	srv.log(ctx).Info("Session established", slog.String("user_id", userID.String()), slog.String("session_id", session.ID))

	return &entity.SessionToken{Value: signed, ExpiresAt: session.ExpiresAt}, nil
}

// CurrentUserID verifies the token, then requires its session row to exist and be unexpired.
func (srv *sessionService) CurrentUserID(ctx context.Context, token string) (uuid.UUID, error) {
	if strings.TrimSpace(token) == "" {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return uuid.Nil, domainerrors.ErrUnauthenticated.WithCause(err)
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("session revoked")
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	if session.UserID != claims.UserID || session.IsExpired(srv.now()) {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("session expired")
	}

	return session.UserID, nil
}

// Destroy deletes the session row. Tokens that fail verification have nothing to revoke.
func (srv *sessionService) Destroy(ctx context.Context, token string) error {
	if strings.TrimSpace(token) != "" {
		claims, err := srv.tokenService.ValidateSessionToken(token)
		if err == nil {
			if err := srv.sessionRepo.Delete(ctx, claims.ID); err != nil {
				return errors.Wrap(err, "failed to delete session")
			}
			srv.log(ctx).Info("Session destroyed", slog.String("session_id", claims.ID))
		}
	}

	srv.cleanup(ctx)

	return nil
}

// CleanupExpired removes every session row past its expiry.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	return removed, nil
}

// cleanup runs CleanupExpired and only logs failures.
func (srv *sessionService) cleanup(ctx context.Context) {
	removed, err := srv.CleanupExpired(ctx)
	if err != nil {
		srv.log(ctx).Warn("Expired session cleanup failed", slog.Any("error", err))

		return
	}
	if removed > 0 {
		srv.log(ctx).Debug("Expired sessions removed", slog.Int64("count", removed))
	}
}
