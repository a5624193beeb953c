//go:build integration

package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yigit/jobtracker/internal/app/migrations"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/config"
	"github.com/yigit/jobtracker/internal/db"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	sqlfiles "github.com/yigit/jobtracker/migrations"
)

// setupTestStore starts PostgreSQL, applies migrations and returns a Store
func setupTestStore(t *testing.T) *repositories.PostgresStore {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("jobtracker"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.URL = connStr
	cfg.Database.MaxOpenConns = 4
	cfg.Database.ConnMaxLifetime = "5m"

	database, err := db.NewPostgresDB(cfg)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, migrations.NewMigrator(database.Pool, zerolog.Nop()).Migrate(ctx, sqlfiles.Files))
	// applying twice is a no-op
	require.NoError(t, migrations.NewMigrator(database.Pool, zerolog.Nop()).Migrate(ctx, sqlfiles.Files))

	return repositories.NewPostgresStore(database)
}

func TestPostgresStore(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	category := &models.Category{Name: "Research", HazardLevel: 1}
	require.NoError(t, store.Categories().Create(ctx, category))

	t.Run("job roundtrip", func(t *testing.T) {
		job := &models.Job{
			JobTitle:         "deployment of residential modules",
			TeamLeaderID:     models.Int64Ptr(1),
			WorkSize:         15,
			Collaborators:    "2, 3",
			HazardCategoryID: models.Int64Ptr(category.ID),
		}
		require.NoError(t, store.Jobs().Create(ctx, job))
		require.NotZero(t, job.ID)

		got, err := store.Jobs().GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job, got)
	})

	t.Run("unknown category violates foreign key", func(t *testing.T) {
		err := store.Jobs().Create(ctx, &models.Job{JobTitle: "x", HazardCategoryID: models.Int64Ptr(999)})
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		require.NoError(t, store.Users().Create(ctx, &models.User{Email: "dup@mars.org"}))
		err := store.Users().Create(ctx, &models.User{Email: "dup@mars.org"})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		before, err := store.Departments().List(ctx)
		require.NoError(t, err)

		boom := errors.New("boom")
		err = store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
			if err := tx.Departments().Create(ctx, &models.Department{Title: "geology"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		after, err := store.Departments().List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := store.Users().GetByID(ctx, 999999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.ErrorIs(t, store.Jobs().Delete(ctx, 999999), apperrors.ErrJobNotFound)
		assert.ErrorIs(t, store.Departments().Delete(ctx, 999999), apperrors.ErrDepartmentNotFound)
	})
}
