package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireMessages(t *testing.T) {
	// These two messages are part of the API contract: clients match on
	// them verbatim, so the error text must never drift.
	assert.Equal(t, "Unauthorized.", ErrUnauthorized.Error())
	assert.Equal(t, "You don't have permission to do this action.", ErrPermissionDenied.Error())
}

func TestTeamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTeamNotFound", ErrTeamNotFound, "team not found"},
		{"ErrTeamSlugTaken", ErrTeamSlugTaken, "team slug is already taken"},
		{"ErrNotTeamMember", ErrNotTeamMember, "you are not a member of this team"},
		{"ErrInsufficientPermissions", ErrInsufficientPermissions, "insufficient permissions"},
		{"ErrCannotRemoveOwner", ErrCannotRemoveOwner, "cannot remove team owner"},
		{"ErrInvalidRole", ErrInvalidRole, "invalid role, must be admin or member"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsIsComparison(t *testing.T) {
	tests := []struct {
		name   string
		target error
		err    error
		want   bool
	}{
		{"same error", ErrTeamNotFound, ErrTeamNotFound, true},
		{"different error", ErrTeamNotFound, ErrTeamSlugTaken, false},
		{"rebuilt error", ErrTeamNotFound, errors.New(ErrTeamNotFound.Error()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAllErrorsAreUnique(t *testing.T) {
	allErrors := []error{
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrInvalidCredentials,
		ErrUnauthorized,
		ErrInvalidToken,
		ErrTokenExpired,
		ErrInvalidRefreshToken,
		ErrRefreshTokenExpired,
		ErrRefreshTokenReused,
		ErrPermissionDenied,
		ErrTeamNotFound,
		ErrTeamSlugTaken,
		ErrNotTeamMember,
		ErrInsufficientPermissions,
		ErrOwnerCannotLeave,
		ErrCannotRemoveOwner,
		ErrCannotRemoveSelf,
		ErrCannotChangeOwnerRole,
		ErrInvalidRole,
		ErrInvitationNotFound,
		ErrInvitationExpired,
		ErrInvitationEmailMismatch,
		ErrAlreadyMember,
		ErrPendingInvitation,
	}

	seen := make(map[string]bool)
	for _, err := range allErrors {
		msg := err.Error()
		if seen[msg] {
			t.Errorf("duplicate error message found: %s", msg)
		}
		seen[msg] = true
	}
}
