// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"teamstack/internal/models"
	"teamstack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamRepository is a mock implementation of repository.TeamRepository.
type MockTeamRepository struct {
	CreateFunc           func(ctx context.Context, team *models.Team) error
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindBySlugFunc       func(ctx context.Context, slug string) (*models.Team, error)
	FindByUserIDFunc     func(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	UpdateBySlugFunc     func(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error)
	SetLogoKeyFunc       func(ctx context.Context, id primitive.ObjectID, key string) error
	SoftDeleteBySlugFunc func(ctx context.Context, slug string) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindBySlug(ctx context.Context, slug string) (*models.Team, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockTeamRepository) UpdateBySlug(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error) {
	if m.UpdateBySlugFunc != nil {
		return m.UpdateBySlugFunc(ctx, slug, update)
	}
	return nil, nil
}

func (m *MockTeamRepository) SetLogoKey(ctx context.Context, id primitive.ObjectID, key string) error {
	if m.SetLogoKeyFunc != nil {
		return m.SetLogoKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *MockTeamRepository) SoftDeleteBySlug(ctx context.Context, slug string) error {
	if m.SoftDeleteBySlugFunc != nil {
		return m.SoftDeleteBySlugFunc(ctx, slug)
	}
	return nil
}

// MockTeamMemberRepository is a mock implementation of repository.TeamMemberRepository.
type MockTeamMemberRepository struct {
	CreateFunc            func(ctx context.Context, member *models.TeamMember) error
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMember, error)
	FindByTeamAndUserFunc func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error)
	CountByTeamIDFunc     func(ctx context.Context, teamID primitive.ObjectID) (int, error)
	UpdateRoleFunc        func(ctx context.Context, teamID, userID primitive.ObjectID, role string) error
	DeleteFunc            func(ctx context.Context, teamID, userID primitive.ObjectID) error
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockTeamMemberRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMember, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamMemberRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error) {
	if m.FindByTeamAndUserFunc != nil {
		return m.FindByTeamAndUserFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockTeamMemberRepository) CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	if m.CountByTeamIDFunc != nil {
		return m.CountByTeamIDFunc(ctx, teamID)
	}
	return 0, nil
}

func (m *MockTeamMemberRepository) UpdateRole(ctx context.Context, teamID, userID primitive.ObjectID, role string) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, teamID, userID, role)
	}
	return nil
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, teamID, userID)
	}
	return nil
}

func (m *MockTeamMemberRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *models.User) error
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	UpdateFunc      func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	DeleteFunc      func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTeamInvitationRepository is a mock implementation of repository.TeamInvitationRepository.
type MockTeamInvitationRepository struct {
	CreateFunc             func(ctx context.Context, invitation *models.TeamInvitation) error
	FindByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error)
	FindByTeamIDFunc       func(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvitation, error)
	FindByEmailFunc        func(ctx context.Context, email string) ([]models.TeamInvitation, error)
	FindByTeamAndEmailFunc func(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error)
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamIDFunc  func(ctx context.Context, teamID primitive.ObjectID) error
	DeleteExpiredFunc      func(ctx context.Context) (int, error)
}

func (m *MockTeamInvitationRepository) Create(ctx context.Context, invitation *models.TeamInvitation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invitation)
	}
	return nil
}

func (m *MockTeamInvitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamInvitationRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvitation, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamInvitationRepository) FindByEmail(ctx context.Context, email string) ([]models.TeamInvitation, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockTeamInvitationRepository) FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error) {
	if m.FindByTeamAndEmailFunc != nil {
		return m.FindByTeamAndEmailFunc(ctx, teamID, email)
	}
	return nil, nil
}

func (m *MockTeamInvitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTeamInvitationRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

func (m *MockTeamInvitationRepository) DeleteExpired(ctx context.Context) (int, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

// Interface guards.
var (
	_ repository.TeamRepository           = (*MockTeamRepository)(nil)
	_ repository.TeamMemberRepository     = (*MockTeamMemberRepository)(nil)
	_ repository.UserRepository           = (*MockUserRepository)(nil)
	_ repository.TeamInvitationRepository = (*MockTeamInvitationRepository)(nil)
)
