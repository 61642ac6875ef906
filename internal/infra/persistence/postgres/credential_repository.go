package postgres

import (
	"context"

	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// ReplaceForUser deletes every stored token of the user and inserts the new one.
// Atomicity comes from the surrounding transaction.
func (repo *credentialRepository) ReplaceForUser(ctx context.Context, credential *entity.Credential) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", credential.UserID).
		Delete(&model.CredentialModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete previous credentials")
	}

	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate credential ID")
		}
		credential.ID = id
	}

	credentialM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("credential references an unknown user")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindActiveByUserID returns the most recently created credential of the user.
func (repo *credentialRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Take(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find active credential")
	}

	return toCredentialDomain(&credentialM), nil
}

func toCredentialDomain(credentialM *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:             credentialM.ID,
		UserID:         credentialM.UserID,
		EncryptedToken: credentialM.EncryptedToken,
		TokenType:      credentialM.TokenType,
		ExpiresAt:      credentialM.ExpiresAt,
		CreatedAt:      credentialM.CreatedAt,
		UpdatedAt:      credentialM.UpdatedAt,
	}
}

func fromCredentialDomain(credential *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:             credential.ID,
		UserID:         credential.UserID,
		EncryptedToken: credential.EncryptedToken,
		TokenType:      credential.TokenType,
		ExpiresAt:      credential.ExpiresAt,
		CreatedAt:      credential.CreatedAt,
		UpdatedAt:      credential.UpdatedAt,
	}
}
