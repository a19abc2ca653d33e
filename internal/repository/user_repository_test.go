package repository

import (
	"context"
	"testing"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hashed",
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		require.NoError(t, repo.Create(ctx, &models.User{
			Name: "First", Email: "dup@example.com", Password: "x",
		}))

		err := repo.Create(ctx, &models.User{
			Name: "Second", Email: "dup@example.com", Password: "y",
		})

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByEmail(ctx, "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("returns ErrUserNotFound for unknown email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates name", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Before", Email: "upd@example.com", Password: "x"}
		require.NoError(t, repo.Create(ctx, user))

		newName := "After"
		updated, err := repo.Update(ctx, user.ID, &models.UpdateUserRequest{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
	})

	t.Run("returns ErrUserNotFound for unknown id", func(t *testing.T) {
		name := "X"
		updated, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateUserRequest{Name: &name})

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Gone", Email: "gone@example.com", Password: "x"}
		require.NoError(t, repo.Create(ctx, user))

		require.NoError(t, repo.Delete(ctx, user.ID))

		_, err := repo.FindByID(ctx, user.ID)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns ErrUserNotFound when nothing to delete", func(t *testing.T) {
		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
