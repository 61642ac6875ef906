package postgres

import (
	"context"
	"testing"
	"time"

	"adchecker/internal/domain/entity"
	"adchecker/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// withEmptyReplica routes plain reads to a replica that has no tables,
// so any read that is not pinned to the primary fails.
func withEmptyReplica(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{sqlite.Open(":memory:")},
	})))
}

func TestRepositories_ReadYourWritesWithReplicas(t *testing.T) {
	db := newSQLiteDB(t)
	user := seedUser(t, db, "10001")
	withEmptyReplica(t, db)
	ctx := context.Background()

	var count int64
	require.Error(t, db.WithContext(ctx).Model(&model.AccountCacheModel{}).Count(&count).Error,
		"unpinned reads must reach the empty replica")

	now := time.Now().UTC().Truncate(time.Second)

	payload, err := entity.NewAccountListPayload([]entity.AdAccount{{ID: "act_1"}})
	require.NoError(t, err)
	cacheRepo := NewAccountCacheRepository(db)
	require.NoError(t, cacheRepo.Create(ctx, &entity.CachedAccountList{UserID: user.ID, Payload: payload, CachedAt: now}))
	latest, err := cacheRepo.FindLatest(ctx, user.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(latest.Payload))

	credentialRepo := NewCredentialRepository(db)
	require.NoError(t, credentialRepo.ReplaceForUser(ctx, &entity.Credential{
		UserID:         user.ID,
		EncryptedToken: "ciphertext",
		TokenType:      "bearer",
		CreatedAt:      now,
		UpdatedAt:      now,
	}))
	credential, err := credentialRepo.FindActiveByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", credential.EncryptedToken)

	sessionRepo := NewSessionRepository(db)
	session := &entity.Session{ID: ulid.Make().String(), UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(entity.SessionLifetime)}
	require.NoError(t, sessionRepo.Create(ctx, session))
	found, err := sessionRepo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
}
