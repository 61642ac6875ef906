package usecase

import (
	"context"

	"adchecker/internal/domain/entity"

	"github.com/google/uuid"
)

// AdAccountUsecase serves a user's ad accounts through the account cache.
type AdAccountUsecase interface {
	// GetAdAccounts returns the cached list when fresh, otherwise fetches and caches a new one.
	GetAdAccounts(ctx context.Context, userID uuid.UUID) ([]entity.AdAccount, error)

	// SyncAdAccounts drops every cached list of the user, then fetches and caches a new one.
	SyncAdAccounts(ctx context.Context, userID uuid.UUID) ([]entity.AdAccount, error)
}
