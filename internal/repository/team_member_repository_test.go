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

func TestTeamMemberRepository_FindByTeamAndUser(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamMemberRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing membership", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		member := &models.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleAdmin,
		}
		require.NoError(t, repo.Create(ctx, member))

		found, err := repo.FindByTeamAndUser(ctx, teamID, userID)

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	t.Run("returns ErrNotTeamMember for non-member", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		found, err := repo.FindByTeamAndUser(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})
}

func TestTeamMemberRepository_UpdateRole(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamMemberRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates role of existing member", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		require.NoError(t, repo.Create(ctx, &models.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
		}))

		err := repo.UpdateRole(ctx, teamID, userID, models.RoleAdmin)

		require.NoError(t, err)
		found, err := repo.FindByTeamAndUser(ctx, teamID, userID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	t.Run("returns ErrNotTeamMember for non-member", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		err := repo.UpdateRole(ctx, primitive.NewObjectID(), primitive.NewObjectID(), models.RoleAdmin)

		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})
}

func TestTeamMemberRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamMemberRepository(tdb.Database)
	ctx := context.Background()

	t.Run("removes membership", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		require.NoError(t, repo.Create(ctx, &models.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
		}))

		err := repo.Delete(ctx, teamID, userID)

		require.NoError(t, err)
		_, err = repo.FindByTeamAndUser(ctx, teamID, userID)
		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})

	t.Run("returns ErrNotTeamMember when nothing to delete", func(t *testing.T) {
		tdb.ClearCollection(t, "team_members")

		err := repo.Delete(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})
}

func TestTeamMemberRepository_CountByTeamID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamMemberRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "team_members")

	teamID := primitive.NewObjectID()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.TeamMember{
			TeamID: teamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleMember,
		}))
	}

	count, err := repo.CountByTeamID(ctx, teamID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTeamMemberRepository_DeleteAllByTeamID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamMemberRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "team_members")

	teamID := primitive.NewObjectID()
	otherTeamID := primitive.NewObjectID()
	require.NoError(t, repo.Create(ctx, &models.TeamMember{
		TeamID: teamID, UserID: primitive.NewObjectID(), Role: models.RoleMember,
	}))
	require.NoError(t, repo.Create(ctx, &models.TeamMember{
		TeamID: otherTeamID, UserID: primitive.NewObjectID(), Role: models.RoleMember,
	}))

	require.NoError(t, repo.DeleteAllByTeamID(ctx, teamID))

	count, err := repo.CountByTeamID(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	otherCount, err := repo.CountByTeamID(ctx, otherTeamID)
	require.NoError(t, err)
	assert.Equal(t, 1, otherCount)
}
