//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "adchecker",
				"POSTGRES_PASSWORD": "adchecker",
				"POSTGRES_DB":       "adchecker",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=adchecker password=adchecker dbname=adchecker sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func TestPostgresIntegration(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	users := NewUserRepository(db)
	user := &entity.User{MetaUserID: "10001", Name: "Ada", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(ctx, user))

	t.Run("duplicate meta user id maps to conflict", func(t *testing.T) {
		err := users.Create(ctx, &entity.User{MetaUserID: "10001", CreatedAt: now, UpdatedAt: now})
		assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	})

	t.Run("credential foreign key", func(t *testing.T) {
		err := NewCredentialRepository(db).ReplaceForUser(ctx, &entity.Credential{
			UserID: uuid.New(), EncryptedToken: "x", TokenType: "bearer", CreatedAt: now, UpdatedAt: now,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("cache payload round trips through jsonb and prunes", func(t *testing.T) {
		cache := NewAccountCacheRepository(db)
		for i := range 3 {
			payload, err := entity.NewAccountListPayload([]entity.AdAccount{{ID: fmt.Sprintf("act_%d", i), Status: "Active"}})
			require.NoError(t, err)
			require.NoError(t, cache.Create(ctx, &entity.CachedAccountList{
				UserID: user.ID, Payload: payload, CachedAt: now.Add(time.Duration(i) * time.Second),
			}))
		}

		pruned, err := cache.PruneByUserID(ctx, user.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), pruned)

		latest, err := cache.FindLatest(ctx, user.ID)
		require.NoError(t, err)
		accounts, err := latest.Accounts()
		require.NoError(t, err)
		assert.Equal(t, "act_2", accounts[0].ID)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		failure := errors.New("abort")
		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewUserRepository().Create(ctx, &entity.User{MetaUserID: "20002", CreatedAt: now, UpdatedAt: now}); err != nil {
				return err
			}

			return failure
		})
		require.ErrorIs(t, err, failure)

		_, err = users.FindByMetaUserID(ctx, "20002")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
