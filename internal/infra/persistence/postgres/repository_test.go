package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"adchecker/config"
	"adchecker/internal/domain/constants"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/errors"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = constants.StorageDriverSQLite
	cfg.Storage.SQLitePath = ":memory:"

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, metaUserID string) *entity.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &entity.User{MetaUserID: metaUserID, Name: "User " + metaUserID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "10001")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, uuid.Version(7), user.ID.Version())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "10001", byID.MetaUserID)

	byMeta, err := repo.FindByMetaUserID(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byMeta.ID)

	_, err = repo.FindByMetaUserID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateMetaUserID(t *testing.T) {
	db := newSQLiteDB(t)
	seedUser(t, db, "10001")

	now := time.Now().UTC()
	err := NewUserRepository(db).Create(context.Background(), &entity.User{MetaUserID: "10001", CreatedAt: now, UpdatedAt: now})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "10001")

	user.Name = "Renamed"
	user.Email = "new@example.com"
	user.UpdatedAt = user.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.UpdateProfile(ctx, user))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "10001", got.MetaUserID)

	err = repo.UpdateProfile(ctx, &entity.User{ID: uuid.New(), UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestCredentialRepository_ReplaceKeepsOnlyNewest(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "10001")

	_, err := repo.FindActiveByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	base := time.Now().UTC().Truncate(time.Second)
	expiry := base.Add(60 * 24 * time.Hour)
	first := &entity.Credential{UserID: user.ID, EncryptedToken: "sealed-1", TokenType: "bearer", CreatedAt: base, UpdatedAt: base}
	second := &entity.Credential{UserID: user.ID, EncryptedToken: "sealed-2", TokenType: "bearer", ExpiresAt: &expiry, CreatedAt: base.Add(time.Minute), UpdatedAt: base.Add(time.Minute)}

	require.NoError(t, repo.ReplaceForUser(ctx, first))
	require.NoError(t, repo.ReplaceForUser(ctx, second))

	active, err := repo.FindActiveByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sealed-2", active.EncryptedToken)
	require.NotNil(t, active.ExpiresAt)
	assert.True(t, expiry.Equal(*active.ExpiresAt))

	var count int64
	require.NoError(t, db.Table("user_tokens").Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCredentialRepository_UnknownUser(t *testing.T) {
	db := newSQLiteDB(t)
	now := time.Now().UTC()

	err := NewCredentialRepository(db).ReplaceForUser(context.Background(),
		&entity.Credential{UserID: uuid.New(), EncryptedToken: "x", TokenType: "bearer", CreatedAt: now, UpdatedAt: now})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountCacheRepository_LatestInvalidateAndPrune(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewAccountCacheRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "10001")
	other := seedUser(t, db, "20002")

	_, err := repo.FindLatest(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	base := time.Now().UTC().Truncate(time.Second)
	for i, name := range []string{"first", "second", "third"} {
		payload, err := entity.NewAccountListPayload([]entity.AdAccount{{ID: "act_" + name, Name: name}})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &entity.CachedAccountList{
			UserID:   user.ID,
			Payload:  payload,
			CachedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	otherPayload, err := entity.NewAccountListPayload(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &entity.CachedAccountList{UserID: other.ID, Payload: otherPayload, CachedAt: base}))

	latest, err := repo.FindLatest(ctx, user.ID)
	require.NoError(t, err)
	accounts, err := latest.Accounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "act_third", accounts[0].ID)
	assert.True(t, base.Add(2*time.Minute).Equal(latest.CachedAt))

	pruned, err := repo.PruneByUserID(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	latest, err = repo.FindLatest(ctx, user.ID)
	require.NoError(t, err)
	accounts, err = latest.Accounts()
	require.NoError(t, err)
	assert.Equal(t, "act_third", accounts[0].ID)

	pruned, err = repo.PruneByUserID(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Zero(t, pruned)

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))
	_, err = repo.FindLatest(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	// other users are untouched
	_, err = repo.FindLatest(ctx, other.ID)
	assert.NoError(t, err)
}

func TestAccountCacheRepository_ConcurrentRefreshKeepsOnePayload(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewAccountCacheRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "10001")

	lists := [][]entity.AdAccount{
		{{ID: "act_a1", Name: "a1"}, {ID: "act_a2", Name: "a2"}},
		{{ID: "act_b1", Name: "b1"}},
	}
	payloads := make([][]byte, len(lists))
	for i, accounts := range lists {
		payload, err := entity.NewAccountListPayload(accounts)
		require.NoError(t, err)
		payloads[i] = payload
	}

	for round := 0; round < 10; round++ {
		var wg sync.WaitGroup
		errs := make([]error, len(payloads))
		for i, payload := range payloads {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := repo.DeleteByUserID(ctx, user.ID); err != nil {
					errs[i] = err

					return
				}
				errs[i] = repo.Create(ctx, &entity.CachedAccountList{
					UserID:   user.ID,
					Payload:  payload,
					CachedAt: time.Now().UTC(),
				})
			}()
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		latest, err := repo.FindLatest(ctx, user.ID)
		require.NoError(t, err)
		accounts, err := latest.Accounts()
		require.NoError(t, err)
		assert.Contains(t, lists, accounts, "round %d", round)
	}
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "10001")
	now := time.Now().UTC().Truncate(time.Second)

	live := &entity.Session{ID: ulid.Make().String(), UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(entity.SessionLifetime)}
	expired := &entity.Session{ID: ulid.Make().String(), UserID: user.ID, CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, expired))

	got, err := repo.FindByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.True(t, live.ExpiresAt.Equal(got.ExpiresAt))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByID(ctx, expired.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.Delete(ctx, live.ID))
	require.NoError(t, repo.Delete(ctx, live.ID))
	_, err = repo.FindByID(ctx, live.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_UnknownUser(t *testing.T) {
	db := newSQLiteDB(t)
	now := time.Now().UTC()

	err := NewSessionRepository(db).Create(context.Background(),
		&entity.Session{ID: ulid.Make().String(), UserID: uuid.New(), CreatedAt: now, ExpiresAt: now.Add(time.Hour)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
