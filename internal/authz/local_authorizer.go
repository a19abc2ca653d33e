package authz

import (
	"context"

	"teamstack/internal/models"
)

// LocalAuthorizer evaluates the built-in role map in process. It is the
// default backend and the fallback when no decision service is deployed.
type LocalAuthorizer struct{}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{}
}

// rolePermissions maps team actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionTeamRead:     {models.RoleOwner, models.RoleAdmin, models.RoleMember},
	ActionTeamUpdate:   {models.RoleOwner, models.RoleAdmin},
	ActionTeamDelete:   {models.RoleOwner},
	ActionMemberList:   {models.RoleOwner, models.RoleAdmin, models.RoleMember},
	ActionMemberRemove: {models.RoleOwner, models.RoleAdmin},
	ActionMemberRole:   {models.RoleOwner, models.RoleAdmin},
	ActionInvite:       {models.RoleOwner, models.RoleAdmin},
}

// IsAllowed reports whether any of the principal's roles grants the action.
func (a *LocalAuthorizer) IsAllowed(_ context.Context, input CheckInput) (bool, error) {
	if input.Resource.Kind != ResourceTeam {
		return false, nil
	}

	allowedRoles, exists := rolePermissions[input.Action]
	if !exists {
		return false, nil // Unknown action
	}

	for _, role := range input.Principal.Roles {
		for _, allowed := range allowedRoles {
			if role == allowed {
				return true, nil
			}
		}
	}

	return false, nil
}
