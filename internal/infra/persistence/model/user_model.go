package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MetaUserID string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(255)"`
	Email      string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Credentials   []CredentialModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AccountCaches []AccountCacheModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions      []SessionModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
