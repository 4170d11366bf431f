package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
)

func newTestRepository(t *testing.T) (repository.AccountRepository, *gorm.DB) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(nil, logger, false)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewAccountRepository(db), db
}

func TestAccountRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	account := &entity.Account{
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}

	require.NoError(t, repo.Create(ctx, account))

	assert.Positive(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestAccountRepository_IDsAreMonotonic(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	var lastID int64
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		account := &entity.Account{Name: "n", Email: email, PasswordHash: "h"}
		require.NoError(t, repo.Create(ctx, account))
		assert.Greater(t, account.ID, lastID)
		lastID = account.ID
	}
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created := &entity.Account{
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ada Lovelace", found.Name)
	assert.Equal(t, created.PasswordHash, found.PasswordHash)
	assert.WithinDuration(t, created.CreatedAt, found.CreatedAt, time.Second)
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	found, err := repo.FindByEmail(context.Background(), "missing@x.com")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first := &entity.Account{Name: "Ada Lovelace", Email: "ada@x.com", PasswordHash: "hash-1"}
	require.NoError(t, repo.Create(ctx, first))

	// Different name and password, same email: the unique index decides.
	second := &entity.Account{Name: "Someone Else", Email: "ada@x.com", PasswordHash: "hash-2"}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	_, db := newTestRepository(t)

	// Re-running the bootstrap against an existing schema must be a no-op.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
