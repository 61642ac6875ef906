package postgres

import (
	"adchecker/internal/errors"
	"adchecker/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the users, user_tokens, ad_accounts_cache and sessions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
