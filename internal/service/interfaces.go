// Package service contains business logic for the application.
package service

import (
	"context"

	"teamstack/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID string, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context, userID string, page, limit int) (*models.TeamListResponse, error)
	GetTeam(ctx context.Context, slug string) (*models.Team, error)
	GetTeamWithRole(ctx context.Context, slug, userID string) (*models.TeamWithRole, error)
	UpdateTeam(ctx context.Context, slug, actorID string, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, slug, actorID string) error
	LogoURL(ctx context.Context, team *models.Team) (string, error)
	LogoUploadURL(ctx context.Context, team *models.Team, contentType string) (*models.LogoUploadResponse, error)
}

// TeamMemberServicer defines the interface for team member operations.
type TeamMemberServicer interface {
	ListMembers(ctx context.Context, team *models.Team) (*models.TeamMemberListResponse, error)
	RemoveMember(ctx context.Context, team *models.Team, targetUserID, actorID string) error
	UpdateRole(ctx context.Context, team *models.Team, targetUserID, actorID, newRole string) error
	LeaveTeam(ctx context.Context, team *models.Team, userID string) error
}

// TeamInvitationServicer defines the interface for invitation operations.
type TeamInvitationServicer interface {
	CreateInvitation(ctx context.Context, team *models.Team, inviterID string, req *models.CreateInvitationRequest) (*models.TeamInvitation, error)
	ListTeamInvitations(ctx context.Context, team *models.Team) (*models.InvitationListResponse, error)
	CancelInvitation(ctx context.Context, team *models.Team, invitationID string) error
	ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitation(ctx context.Context, invitationID, userID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, invitationID, userEmail string) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer           = (*AuthService)(nil)
	_ UserServicer           = (*UserService)(nil)
	_ TeamServicer           = (*TeamService)(nil)
	_ TeamMemberServicer     = (*TeamMemberService)(nil)
	_ TeamInvitationServicer = (*TeamInvitationService)(nil)
)
