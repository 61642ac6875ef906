package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'user_tokens' table. Only ciphertext is stored.
type CredentialModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_tokens_user_created,priority:1"`
	EncryptedToken string    `gorm:"type:text;not null"`
	TokenType      string    `gorm:"type:varchar(32);not null;default:bearer"`
	ExpiresAt      *time.Time
	CreatedAt      time.Time `gorm:"not null;index:idx_user_tokens_user_created,priority:2,sort:desc"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "user_tokens"
}
