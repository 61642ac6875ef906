package repository

import (
	"context"

	"adchecker/internal/domain/entity"
	"adchecker/internal/errors"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when a user has no stored access token.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores the encrypted access tokens of users.
type CredentialRepository interface {
	// ReplaceForUser deletes every credential of the user and inserts the given one.
	// It must run inside the transaction that upserts the user.
	ReplaceForUser(ctx context.Context, credential *entity.Credential) error

	// FindActiveByUserID returns the most recently created credential of the user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}
