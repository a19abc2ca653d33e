// Package authz provides policy-based authorization for team resources.
// Decisions are expressed as principal/resource/action checks so the
// backend can be swapped between the built-in role map and an external
// policy decision service without touching callers.
package authz

import (
	"context"

	apperrors "teamstack/internal/errors"
)

// Resource kinds.
const (
	ResourceTeam = "team"
)

// Action constants define the authorization actions.
const (
	ActionTeamRead     = "read"
	ActionTeamUpdate   = "update"
	ActionTeamDelete   = "delete"
	ActionMemberList   = "list_members"
	ActionMemberRemove = "remove_member"
	ActionMemberRole   = "update_role"
	ActionInvite       = "invite"
)

// Principal is the acting identity plus its roles in the target team.
type Principal struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// Resource is the target entity an action is performed against.
type Resource struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// CheckInput is a single authorization question.
type CheckInput struct {
	Principal Principal
	Resource  Resource
	Action    string
}

// Authorizer answers authorization questions. Implementations must be
// safe for concurrent use.
type Authorizer interface {
	// IsAllowed reports whether the principal may perform the action on
	// the resource. A returned error means the decision could not be
	// made, not that it was denied.
	IsAllowed(ctx context.Context, input CheckInput) (bool, error)
}

// CheckOrDeny is the error-returning calling convention over IsAllowed:
// a denied decision comes back as ErrPermissionDenied so callers can
// propagate it to a single recovery boundary.
func CheckOrDeny(ctx context.Context, a Authorizer, input CheckInput) error {
	allowed, err := a.IsAllowed(ctx, input)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
