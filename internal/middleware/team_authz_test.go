package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamstack/internal/authz"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTeamRoleLookup struct {
	team *models.TeamWithRole
	err  error
}

func (f *fakeTeamRoleLookup) GetTeamWithRole(_ context.Context, _, _ string) (*models.TeamWithRole, error) {
	return f.team, f.err
}

func newTeamAccessContext(t *testing.T, withUser bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/teams/acme", nil)
	c.Params = gin.Params{{Key: "slug", Value: "acme"}}
	if withUser {
		c.Set(UserIDKey, "507f1f77bcf86cd799439011")
	}
	return c, w
}

func TestTeamAccess(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme", Slug: "acme"}

	t.Run("allows team member with sufficient role", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{team: &models.TeamWithRole{Team: team, Role: models.RoleAdmin}}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamUpdate)

		c, _ := newTeamAccessContext(t, true)
		mw(c)

		assert.False(t, c.IsAborted())
		gotTeam, ok := GetTeam(c)
		require.True(t, ok)
		assert.Equal(t, team.ID, gotTeam.ID)
		assert.Equal(t, models.RoleAdmin, GetTeamRole(c))
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{team: &models.TeamWithRole{Team: team, Role: models.RoleAdmin}}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamRead)

		c, w := newTeamAccessContext(t, false)
		mw(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 404 for unknown team", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{err: apperrors.ErrTeamNotFound}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamRead)

		c, w := newTeamAccessContext(t, true)
		mw(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 403 for non-member", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{err: apperrors.ErrNotTeamMember}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamRead)

		c, w := newTeamAccessContext(t, true)
		mw(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You don't have permission to do this action.")
	})

	t.Run("returns 403 when role is insufficient", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{team: &models.TeamWithRole{Team: team, Role: models.RoleMember}}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamDelete)

		c, w := newTeamAccessContext(t, true)
		mw(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("returns 500 when lookup fails", func(t *testing.T) {
		lookup := &fakeTeamRoleLookup{err: errors.New("db down")}
		mw := TeamAccess(lookup, authz.NewLocalAuthorizer(), authz.ActionTeamRead)

		c, w := newTeamAccessContext(t, true)
		mw(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
