package repository

import (
	"context"

	"adchecker/internal/domain/entity"
	"adchecker/internal/errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when a user has no cached account list.
var ErrCacheMiss = errors.New("account cache miss")

// AccountCacheRepository stores snapshots of users' ad account lists.
type AccountCacheRepository interface {
	// FindLatest returns the newest snapshot for the user regardless of age.
	FindLatest(ctx context.Context, userID uuid.UUID) (*entity.CachedAccountList, error)

	// Create inserts a new snapshot. The ID is assigned when zero.
	Create(ctx context.Context, entry *entity.CachedAccountList) error

	// DeleteByUserID removes every snapshot of the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// PruneByUserID keeps the newest keep snapshots of the user and deletes the rest.
	// It returns the number of deleted rows.
	PruneByUserID(ctx context.Context, userID uuid.UUID, keep int) (int64, error)
}
