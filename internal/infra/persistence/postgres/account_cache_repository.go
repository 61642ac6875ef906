package postgres

import (
	"context"

	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountCacheRepository implements the repository.AccountCacheRepository interface.
type accountCacheRepository struct {
	db *gorm.DB
}

// NewAccountCacheRepository is the constructor for accountCacheRepository.
func NewAccountCacheRepository(db *gorm.DB) repository.AccountCacheRepository {
	return &accountCacheRepository{db: db}
}

// FindLatest returns the newest snapshot of the user regardless of age.
func (repo *accountCacheRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*entity.CachedAccountList, error) {
	var cacheM model.AccountCacheModel
	// Served from the primary: a read right after a sync must see the new row.
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("cached_at DESC").
		Order("id DESC").
		Take(&cacheM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to find latest account cache entry")
	}

	return toAccountCacheDomain(&cacheM), nil
}

// Create inserts a new snapshot. Existing rows are never updated in place.
func (repo *accountCacheRepository) Create(ctx context.Context, entry *entity.CachedAccountList) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cache entry ID")
		}
		entry.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(fromAccountCacheDomain(entry)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cache entry references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account cache entry")
	}

	return nil
}

// DeleteByUserID removes every snapshot of the user.
func (repo *accountCacheRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AccountCacheModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account cache")
	}

	return nil
}

// PruneByUserID keeps the newest keep snapshots of the user and deletes the rest.
func (repo *accountCacheRepository) PruneByUserID(ctx context.Context, userID uuid.UUID, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	db := repo.db.WithContext(ctx)
	newest := db.Model(&model.AccountCacheModel{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("cached_at DESC").
		Order("id DESC").
		Limit(keep)

	result := db.
		Where("user_id = ?", userID).
		Where("id NOT IN (?)", newest).
		Delete(&model.AccountCacheModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune account cache")
	}

	return result.RowsAffected, nil
}

func toAccountCacheDomain(cacheM *model.AccountCacheModel) *entity.CachedAccountList {
	return &entity.CachedAccountList{
		ID:       cacheM.ID,
		UserID:   cacheM.UserID,
		Payload:  []byte(cacheM.Payload),
		CachedAt: cacheM.CachedAt,
	}
}

func fromAccountCacheDomain(entry *entity.CachedAccountList) *model.AccountCacheModel {
	return &model.AccountCacheModel{
		ID:       entry.ID,
		UserID:   entry.UserID,
		Payload:  datatypes.JSON(entry.Payload),
		CachedAt: entry.CachedAt.UTC(),
	}
}
