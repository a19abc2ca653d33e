// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"teamstack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults.
func NewTeam() *TeamBuilder {
	ownerID := primitive.NewObjectID()
	return &TeamBuilder{
		team: models.Team{
			ID:        primitive.NewObjectID(),
			Name:      "Test Team",
			Slug:      fmt.Sprintf("test-team-%s", primitive.NewObjectID().Hex()[:8]),
			Domain:    "example.com",
			OwnerID:   ownerID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			DeletedAt: nil,
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithSlug(slug string) *TeamBuilder {
	b.team.Slug = slug
	return b
}

func (b *TeamBuilder) WithDomain(domain string) *TeamBuilder {
	b.team.Domain = domain
	return b
}

func (b *TeamBuilder) WithLogoKey(key string) *TeamBuilder {
	b.team.LogoKey = key
	return b
}

func (b *TeamBuilder) WithOwnerID(ownerID primitive.ObjectID) *TeamBuilder {
	b.team.OwnerID = ownerID
	return b
}

func (b *TeamBuilder) Deleted() *TeamBuilder {
	now := time.Now()
	b.team.DeletedAt = &now
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== TeamMember Fixtures =====

// TeamMemberBuilder provides fluent API for building test team members.
type TeamMemberBuilder struct {
	member models.TeamMember
}

// NewTeamMember creates a new TeamMemberBuilder with sensible defaults.
func NewTeamMember() *TeamMemberBuilder {
	return &TeamMemberBuilder{
		member: models.TeamMember{
			ID:       primitive.NewObjectID(),
			TeamID:   primitive.NewObjectID(),
			UserID:   primitive.NewObjectID(),
			Role:     models.RoleMember,
			JoinedAt: time.Now(),
		},
	}
}

func (b *TeamMemberBuilder) WithID(id primitive.ObjectID) *TeamMemberBuilder {
	b.member.ID = id
	return b
}

func (b *TeamMemberBuilder) WithTeamID(teamID primitive.ObjectID) *TeamMemberBuilder {
	b.member.TeamID = teamID
	return b
}

func (b *TeamMemberBuilder) WithUserID(userID primitive.ObjectID) *TeamMemberBuilder {
	b.member.UserID = userID
	return b
}

func (b *TeamMemberBuilder) WithRole(role string) *TeamMemberBuilder {
	b.member.Role = role
	return b
}

func (b *TeamMemberBuilder) AsOwner() *TeamMemberBuilder {
	b.member.Role = models.RoleOwner
	return b
}

func (b *TeamMemberBuilder) AsAdmin() *TeamMemberBuilder {
	b.member.Role = models.RoleAdmin
	return b
}

func (b *TeamMemberBuilder) AsMember() *TeamMemberBuilder {
	b.member.Role = models.RoleMember
	return b
}

func (b *TeamMemberBuilder) Build() models.TeamMember {
	return b.member
}

func (b *TeamMemberBuilder) BuildPtr() *models.TeamMember {
	return &b.member
}

// ===== TeamInvitation Fixtures =====

// TeamInvitationBuilder provides fluent API for building test team invitations.
type TeamInvitationBuilder struct {
	invitation models.TeamInvitation
}

// NewTeamInvitation creates a new TeamInvitationBuilder with sensible defaults.
func NewTeamInvitation() *TeamInvitationBuilder {
	return &TeamInvitationBuilder{
		invitation: models.TeamInvitation{
			ID:        primitive.NewObjectID(),
			TeamID:    primitive.NewObjectID(),
			Email:     fmt.Sprintf("invited-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			InvitedBy: primitive.NewObjectID(),
			Role:      models.RoleMember,
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 days from now
			CreatedAt: time.Now(),
		},
	}
}

func (b *TeamInvitationBuilder) WithID(id primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.ID = id
	return b
}

func (b *TeamInvitationBuilder) WithTeamID(teamID primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.TeamID = teamID
	return b
}

func (b *TeamInvitationBuilder) WithEmail(email string) *TeamInvitationBuilder {
	b.invitation.Email = email
	return b
}

func (b *TeamInvitationBuilder) WithInvitedBy(userID primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.InvitedBy = userID
	return b
}

func (b *TeamInvitationBuilder) WithRole(role string) *TeamInvitationBuilder {
	b.invitation.Role = role
	return b
}

func (b *TeamInvitationBuilder) Expired() *TeamInvitationBuilder {
	b.invitation.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *TeamInvitationBuilder) Build() models.TeamInvitation {
	return b.invitation
}

func (b *TeamInvitationBuilder) BuildPtr() *models.TeamInvitation {
	return &b.invitation
}
