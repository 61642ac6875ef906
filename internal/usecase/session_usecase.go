package usecase

import (
	"context"

	"adchecker/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages browser sessions.
type SessionUsecase interface {
	// Establish opens a 24h session for the user and returns its signed token.
	Establish(ctx context.Context, userID uuid.UUID) (*entity.SessionToken, error)

	// CurrentUserID resolves a session token to the signed-in user.
	// Any invalid, expired or revoked token yields domain errors.ErrUnauthenticated.
	CurrentUserID(ctx context.Context, token string) (uuid.UUID, error)

	// Destroy revokes the session behind the token. Unknown tokens are ignored.
	Destroy(ctx context.Context, token string) error

	// CleanupExpired removes expired session rows and returns how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
