package postgres

import (
	"testing"

	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := &entity.User{Email: "hiker@example.com", PhoneNumber: ptr("+15550001111")}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hiker@example.com", byID.Email)
	require.NotNil(t, byID.PhoneNumber)
	assert.Equal(t, "+15550001111", *byID.PhoneNumber)

	byEmail, err := repo.FindByEmail(ctx, "hiker@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID(t.Context(), 42)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(t.Context(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com"}))

	err := repo.Create(ctx, &entity.User{Email: "dup@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := createTestUser(t, db, "old@example.com")
	user.Email = "new@example.com"
	user.PhoneNumber = ptr("+15559998888")
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", stored.Email)
	assert.Equal(t, "+15559998888", *stored.PhoneNumber)

	err = repo.Update(ctx, &entity.User{ID: 999, Email: "ghost@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
