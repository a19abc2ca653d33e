package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/queue"
	"teamstack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInvitationService handles business logic for invitation operations.
type TeamInvitationService struct {
	invitationRepo repository.TeamInvitationRepository
	memberRepo     repository.TeamMemberRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	events         queue.Queue
}

// NewTeamInvitationService creates a new TeamInvitationService.
func NewTeamInvitationService(
	invitationRepo repository.TeamInvitationRepository,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	events queue.Queue,
) *TeamInvitationService {
	return &TeamInvitationService{
		invitationRepo: invitationRepo,
		memberRepo:     memberRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		events:         events,
	}
}

// CreateInvitation creates a new invitation to join a team.
func (s *TeamInvitationService) CreateInvitation(ctx context.Context, team *models.Team, inviterID string, req *models.CreateInvitationRequest) (*models.TeamInvitation, error) {
	inviter, err := primitive.ObjectIDFromHex(inviterID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// An existing member needs no invitation
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		_, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, user.ID)
		if err == nil {
			return nil, apperrors.ErrAlreadyMember
		}
	}

	_, err = s.invitationRepo.FindByTeamAndEmail(ctx, team.ID, email)
	if err == nil {
		return nil, apperrors.ErrPendingInvitation
	}
	if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		return nil, err
	}

	invitation := &models.TeamInvitation{
		TeamID:    team.ID,
		Email:     email,
		InvitedBy: inviter,
		Role:      req.Role,
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.emit(queue.Event{
		Type:    queue.EventInvitationCreated,
		TeamID:  team.ID.Hex(),
		ActorID: inviterID,
		Payload: map[string]string{"email": email, "role": req.Role},
	})

	return invitation, nil
}

// ListTeamInvitations returns all pending invitations for a team.
func (s *TeamInvitationService) ListTeamInvitations(ctx context.Context, team *models.Team) (*models.InvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &models.InvitationListResponse{
		Items: invitations,
	}, nil
}

// CancelInvitation cancels a pending invitation.
func (s *TeamInvitationService) CancelInvitation(ctx context.Context, team *models.Team, invitationID string) error {
	id, err := primitive.ObjectIDFromHex(invitationID)
	if err != nil {
		return apperrors.ErrInvitationNotFound
	}

	invitation, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invitation.TeamID != team.ID {
		return apperrors.ErrInvitationNotFound
	}

	return s.invitationRepo.Delete(ctx, id)
}

// ListMyInvitations returns all pending invitations for a user's email.
func (s *TeamInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	invitations, err := s.invitationRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	invitationsWithDetails := make([]models.TeamInvitationWithDetails, 0, len(invitations))
	for _, inv := range invitations {
		detail := models.TeamInvitationWithDetails{
			ID:        inv.ID,
			Role:      inv.Role,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		}

		team, err := s.teamRepo.FindByID(ctx, inv.TeamID)
		if err == nil {
			detail.Team = &models.TeamSummary{
				ID:   team.ID,
				Name: team.Name,
				Slug: team.Slug,
			}
		}

		inviter, err := s.userRepo.FindByID(ctx, inv.InvitedBy)
		if err == nil {
			detail.InvitedBy = &models.UserSummary{
				ID:    inviter.ID,
				Email: inviter.Email,
				Name:  inviter.Name,
			}
		}

		invitationsWithDetails = append(invitationsWithDetails, detail)
	}

	return &models.MyInvitationListResponse{
		Items: invitationsWithDetails,
	}, nil
}

// AcceptInvitation accepts an invitation and adds the user to the team.
func (s *TeamInvitationService) AcceptInvitation(ctx context.Context, invitationID, userID, userEmail string) (*models.AcceptInvitationResponse, error) {
	id, err := primitive.ObjectIDFromHex(invitationID)
	if err != nil {
		return nil, apperrors.ErrInvitationNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	invitation, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	if invitation.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrInvitationExpired
	}

	member := &models.TeamMember{
		TeamID: invitation.TeamID,
		UserID: uid,
		Role:   invitation.Role,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	// Member already created, so a failed cleanup is logged, not fatal
	if err := s.invitationRepo.Delete(ctx, id); err != nil {
		log.Printf("Warning: failed to delete invitation %s after accepting: %v", id.Hex(), err)
	}

	return &models.AcceptInvitationResponse{
		Message: "invitation accepted",
		TeamID:  invitation.TeamID.Hex(),
	}, nil
}

// DeclineInvitation declines an invitation.
func (s *TeamInvitationService) DeclineInvitation(ctx context.Context, invitationID, userEmail string) error {
	id, err := primitive.ObjectIDFromHex(invitationID)
	if err != nil {
		return apperrors.ErrInvitationNotFound
	}

	invitation, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return apperrors.ErrInvitationEmailMismatch
	}

	return s.invitationRepo.Delete(ctx, id)
}

func (s *TeamInvitationService) emit(event queue.Event) {
	if s.events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	_ = s.events.Enqueue(event)
}
