package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountCacheModel mirrors the 'ad_accounts_cache' table. Payload is the
// serialized account list, stored as jsonb on PostgreSQL and JSON text on SQLite.
type AccountCacheModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_ad_accounts_cache_user_cached,priority:1"`
	Payload  datatypes.JSON `gorm:"not null"`
	CachedAt time.Time      `gorm:"not null;index:idx_ad_accounts_cache_user_cached,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (AccountCacheModel) TableName() string {
	return "ad_accounts_cache"
}
