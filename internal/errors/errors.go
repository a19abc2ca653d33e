// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	// ErrUnauthorized carries the exact message clients see when a
	// request arrives without a valid session.
	ErrUnauthorized        = errors.New("Unauthorized.")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenReused  = errors.New("refresh token reuse detected")
)

// Authorization errors
var (
	// ErrPermissionDenied carries the exact message clients see when the
	// policy check denies the requested action.
	ErrPermissionDenied = errors.New("You don't have permission to do this action.")
)

// Team errors
var (
	ErrTeamNotFound            = errors.New("team not found")
	ErrTeamSlugTaken           = errors.New("team slug is already taken")
	ErrNotTeamMember           = errors.New("you are not a member of this team")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOwnerCannotLeave        = errors.New("owner must transfer ownership before leaving")
	ErrCannotRemoveOwner       = errors.New("cannot remove team owner")
	ErrCannotRemoveSelf        = errors.New("cannot remove yourself, use leave endpoint")
	ErrCannotChangeOwnerRole   = errors.New("cannot change owner role, use transfer")
	ErrInvalidRole             = errors.New("invalid role, must be admin or member")
)

// Invitation errors
var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match your account")
	ErrAlreadyMember           = errors.New("user is already a team member")
	ErrPendingInvitation       = errors.New("invitation already pending for this email")
)
