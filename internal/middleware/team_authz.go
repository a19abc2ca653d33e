package middleware

import (
	"context"
	"errors"

	"teamstack/internal/authz"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing team data
const (
	TeamKey     = "team"
	TeamRoleKey = "teamRole"
)

// TeamRoleLookup resolves a team by slug together with the caller's role
// in it.
type TeamRoleLookup interface {
	GetTeamWithRole(ctx context.Context, slug, userID string) (*models.TeamWithRole, error)
}

// TeamAccess returns a middleware that loads the team named by the slug
// path parameter and checks that the caller may perform the action on it.
func TeamAccess(teams TeamRoleLookup, authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		slug := c.Param("slug")
		if slug == "" {
			response.BadRequest(c, "team slug is required")
			c.Abort()
			return
		}

		teamWithRole, err := teams.GetTeamWithRole(c.Request.Context(), slug, userID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTeamNotFound):
				response.NotFound(c, err.Error())
			case errors.Is(err, apperrors.ErrNotTeamMember):
				response.Forbidden(c, apperrors.ErrPermissionDenied.Error())
			default:
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		err = authz.CheckOrDeny(c.Request.Context(), authorizer, authz.CheckInput{
			Principal: authz.Principal{ID: userID, Roles: []string{teamWithRole.Role}},
			Resource:  authz.Resource{Kind: authz.ResourceTeam, ID: teamWithRole.Team.ID.Hex()},
			Action:    action,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrPermissionDenied) {
				response.Forbidden(c, err.Error())
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(TeamKey, teamWithRole.Team)
		c.Set(TeamRoleKey, teamWithRole.Role)

		c.Next()
	}
}

// GetTeam retrieves the team loaded by TeamAccess from the context.
func GetTeam(c *gin.Context) (*models.Team, bool) {
	team, exists := c.Get(TeamKey)
	if !exists {
		return nil, false
	}
	return team.(*models.Team), true
}

// GetTeamRole retrieves the caller's team role from the context.
func GetTeamRole(c *gin.Context) string {
	role, exists := c.Get(TeamRoleKey)
	if !exists {
		return ""
	}
	return role.(string)
}
