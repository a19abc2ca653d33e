// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"teamstack/internal/models"
	"teamstack/internal/service"
)

// MockAuthService is a mock implementation of service.AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc  func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc   func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of service.UserServicer.
type MockUserService struct {
	GetUserFunc    func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTeamService is a mock implementation of service.TeamServicer.
type MockTeamService struct {
	CreateTeamFunc      func(ctx context.Context, userID string, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeamsFunc       func(ctx context.Context, userID string, page, limit int) (*models.TeamListResponse, error)
	GetTeamFunc         func(ctx context.Context, slug string) (*models.Team, error)
	GetTeamWithRoleFunc func(ctx context.Context, slug, userID string) (*models.TeamWithRole, error)
	UpdateTeamFunc      func(ctx context.Context, slug, actorID string, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc      func(ctx context.Context, slug, actorID string) error
	LogoURLFunc         func(ctx context.Context, team *models.Team) (string, error)
	LogoUploadURLFunc   func(ctx context.Context, team *models.Team, contentType string) (*models.LogoUploadResponse, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID string, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, userID string, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, slug string) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeamWithRole(ctx context.Context, slug, userID string) (*models.TeamWithRole, error) {
	if m.GetTeamWithRoleFunc != nil {
		return m.GetTeamWithRoleFunc(ctx, slug, userID)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, slug, actorID string, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, slug, actorID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, slug, actorID string) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, slug, actorID)
	}
	return nil
}

func (m *MockTeamService) LogoURL(ctx context.Context, team *models.Team) (string, error) {
	if m.LogoURLFunc != nil {
		return m.LogoURLFunc(ctx, team)
	}
	return "", nil
}

func (m *MockTeamService) LogoUploadURL(ctx context.Context, team *models.Team, contentType string) (*models.LogoUploadResponse, error) {
	if m.LogoUploadURLFunc != nil {
		return m.LogoUploadURLFunc(ctx, team, contentType)
	}
	return nil, nil
}

// MockTeamMemberService is a mock implementation of service.TeamMemberServicer.
type MockTeamMemberService struct {
	ListMembersFunc  func(ctx context.Context, team *models.Team) (*models.TeamMemberListResponse, error)
	RemoveMemberFunc func(ctx context.Context, team *models.Team, targetUserID, actorID string) error
	UpdateRoleFunc   func(ctx context.Context, team *models.Team, targetUserID, actorID, newRole string) error
	LeaveTeamFunc    func(ctx context.Context, team *models.Team, userID string) error
}

func (m *MockTeamMemberService) ListMembers(ctx context.Context, team *models.Team) (*models.TeamMemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, team)
	}
	return nil, nil
}

func (m *MockTeamMemberService) RemoveMember(ctx context.Context, team *models.Team, targetUserID, actorID string) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, team, targetUserID, actorID)
	}
	return nil
}

func (m *MockTeamMemberService) UpdateRole(ctx context.Context, team *models.Team, targetUserID, actorID, newRole string) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, team, targetUserID, actorID, newRole)
	}
	return nil
}

func (m *MockTeamMemberService) LeaveTeam(ctx context.Context, team *models.Team, userID string) error {
	if m.LeaveTeamFunc != nil {
		return m.LeaveTeamFunc(ctx, team, userID)
	}
	return nil
}

// MockTeamInvitationService is a mock implementation of service.TeamInvitationServicer.
type MockTeamInvitationService struct {
	CreateInvitationFunc    func(ctx context.Context, team *models.Team, inviterID string, req *models.CreateInvitationRequest) (*models.TeamInvitation, error)
	ListTeamInvitationsFunc func(ctx context.Context, team *models.Team) (*models.InvitationListResponse, error)
	CancelInvitationFunc    func(ctx context.Context, team *models.Team, invitationID string) error
	ListMyInvitationsFunc   func(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitationFunc    func(ctx context.Context, invitationID, userID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitationFunc   func(ctx context.Context, invitationID, userEmail string) error
}

func (m *MockTeamInvitationService) CreateInvitation(ctx context.Context, team *models.Team, inviterID string, req *models.CreateInvitationRequest) (*models.TeamInvitation, error) {
	if m.CreateInvitationFunc != nil {
		return m.CreateInvitationFunc(ctx, team, inviterID, req)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) ListTeamInvitations(ctx context.Context, team *models.Team) (*models.InvitationListResponse, error) {
	if m.ListTeamInvitationsFunc != nil {
		return m.ListTeamInvitationsFunc(ctx, team)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) CancelInvitation(ctx context.Context, team *models.Team, invitationID string) error {
	if m.CancelInvitationFunc != nil {
		return m.CancelInvitationFunc(ctx, team, invitationID)
	}
	return nil
}

func (m *MockTeamInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	if m.ListMyInvitationsFunc != nil {
		return m.ListMyInvitationsFunc(ctx, userEmail)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) AcceptInvitation(ctx context.Context, invitationID, userID, userEmail string) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, invitationID, userID, userEmail)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) DeclineInvitation(ctx context.Context, invitationID, userEmail string) error {
	if m.DeclineInvitationFunc != nil {
		return m.DeclineInvitationFunc(ctx, invitationID, userEmail)
	}
	return nil
}

// Interface guards.
var (
	_ service.AuthServicer           = (*MockAuthService)(nil)
	_ service.UserServicer           = (*MockUserService)(nil)
	_ service.TeamServicer           = (*MockTeamService)(nil)
	_ service.TeamMemberServicer     = (*MockTeamMemberService)(nil)
	_ service.TeamInvitationServicer = (*MockTeamInvitationService)(nil)
)
