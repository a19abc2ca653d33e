package service

import (
	"context"
	"time"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/queue"
	"teamstack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberService handles business logic for team member operations.
type TeamMemberService struct {
	memberRepo repository.TeamMemberRepository
	userRepo   repository.UserRepository
	events     queue.Queue
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(
	memberRepo repository.TeamMemberRepository,
	userRepo repository.UserRepository,
	events queue.Queue,
) *TeamMemberService {
	return &TeamMemberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		events:     events,
	}
}

// ListMembers returns all members of a team with user details.
func (s *TeamMemberService) ListMembers(ctx context.Context, team *models.Team) (*models.TeamMemberListResponse, error) {
	members, err := s.memberRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	membersWithUsers := make([]models.TeamMemberWithUser, 0, len(members))
	for _, m := range members {
		memberWithUser := models.TeamMemberWithUser{
			ID:       m.ID,
			TeamID:   m.TeamID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}

		user, err := s.userRepo.FindByID(ctx, m.UserID)
		if err == nil {
			memberWithUser.User = &models.UserSummary{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			}
		}

		membersWithUsers = append(membersWithUsers, memberWithUser)
	}

	return &models.TeamMemberListResponse{
		Items: membersWithUsers,
	}, nil
}

// RemoveMember removes a member from a team.
func (s *TeamMemberService) RemoveMember(ctx context.Context, team *models.Team, targetUserID, actorID string) error {
	targetID, err := primitive.ObjectIDFromHex(targetUserID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}
	requesterID, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	targetMember, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, targetID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	// The owner membership is fixed; remove others via transfer first
	if targetMember.Role == models.RoleOwner {
		return apperrors.ErrCannotRemoveOwner
	}

	// Only the owner can remove an admin
	if targetMember.Role == models.RoleAdmin {
		requestingMember, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, requesterID)
		if err != nil || requestingMember.Role != models.RoleOwner {
			return apperrors.ErrInsufficientPermissions
		}
	}

	// Self-removal goes through the leave endpoint
	if targetID == requesterID {
		return apperrors.ErrCannotRemoveSelf
	}

	if err := s.memberRepo.Delete(ctx, team.ID, targetID); err != nil {
		return err
	}

	s.emit(queue.Event{
		Type:    queue.EventMemberRemoved,
		TeamID:  team.ID.Hex(),
		ActorID: actorID,
		Payload: map[string]string{"userId": targetUserID},
	})

	return nil
}

// UpdateRole updates a member's role in a team.
func (s *TeamMemberService) UpdateRole(ctx context.Context, team *models.Team, targetUserID, actorID, newRole string) error {
	if newRole != models.RoleAdmin && newRole != models.RoleMember {
		return apperrors.ErrInvalidRole
	}

	targetID, err := primitive.ObjectIDFromHex(targetUserID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}
	requesterID, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	targetMember, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, targetID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	if targetMember.Role == models.RoleOwner {
		return apperrors.ErrCannotChangeOwnerRole
	}

	// Only the owner can change an admin's role
	if targetMember.Role == models.RoleAdmin {
		requestingMember, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, requesterID)
		if err != nil || requestingMember.Role != models.RoleOwner {
			return apperrors.ErrInsufficientPermissions
		}
	}

	if err := s.memberRepo.UpdateRole(ctx, team.ID, targetID, newRole); err != nil {
		return err
	}

	s.emit(queue.Event{
		Type:    queue.EventMemberRoleUpdated,
		TeamID:  team.ID.Hex(),
		ActorID: actorID,
		Payload: map[string]string{"userId": targetUserID, "role": newRole},
	})

	return nil
}

// LeaveTeam removes the requesting user from a team.
func (s *TeamMemberService) LeaveTeam(ctx context.Context, team *models.Team, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	member, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, uid)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	if member.Role == models.RoleOwner {
		return apperrors.ErrOwnerCannotLeave
	}

	if err := s.memberRepo.Delete(ctx, team.ID, uid); err != nil {
		return err
	}

	s.emit(queue.Event{
		Type:    queue.EventMemberRemoved,
		TeamID:  team.ID.Hex(),
		ActorID: userID,
		Payload: map[string]string{"userId": userID},
	})

	return nil
}

func (s *TeamMemberService) emit(event queue.Event) {
	if s.events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	_ = s.events.Enqueue(event)
}
