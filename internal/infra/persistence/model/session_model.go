package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. IDs are ULID strings.
type SessionModel struct {
	ID        string    `gorm:"type:varchar(26);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// All returns every model managed by the schema migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&AccountCacheModel{},
		&SessionModel{},
	}
}
