package service

import (
	"context"
	"log"
	"time"

	"teamstack/internal/cache"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/queue"
	"teamstack/internal/repository"
	"teamstack/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	teamCacheTTL  = 15 * time.Minute
	logoURLExpiry = 15 * time.Minute
)

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo       repository.TeamRepository
	memberRepo     repository.TeamMemberRepository
	invitationRepo repository.TeamInvitationRepository
	cache          cache.Cache
	storage        storage.Storage
	events         queue.Queue
}

// TeamServiceConfig holds configuration for TeamService.
type TeamServiceConfig struct {
	TeamRepo       repository.TeamRepository
	MemberRepo     repository.TeamMemberRepository
	InvitationRepo repository.TeamInvitationRepository
	Cache          cache.Cache
	Storage        storage.Storage
	Events         queue.Queue
}

// NewTeamService creates a new TeamService.
func NewTeamService(cfg TeamServiceConfig) *TeamService {
	return &TeamService{
		teamRepo:       cfg.TeamRepo,
		memberRepo:     cfg.MemberRepo,
		invitationRepo: cfg.InvitationRepo,
		cache:          cfg.Cache,
		storage:        cfg.Storage,
		events:         cfg.Events,
	}
}

// CreateTeam creates a new team and adds the creator as owner.
func (s *TeamService) CreateTeam(ctx context.Context, userID string, req *models.CreateTeamRequest) (*models.Team, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Check if slug is taken
	_, err = s.teamRepo.FindBySlug(ctx, req.Slug)
	if err == nil {
		return nil, apperrors.ErrTeamSlugTaken
	}
	if err != apperrors.ErrTeamNotFound {
		return nil, err
	}

	team := &models.Team{
		Name:    req.Name,
		Slug:    req.Slug,
		Domain:  req.Domain,
		OwnerID: ownerID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: ownerID,
		Role:   models.RoleOwner,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Rollback team creation on failure
		_ = s.teamRepo.SoftDeleteBySlug(ctx, team.Slug)
		return nil, err
	}

	s.emit(queue.Event{
		Type:    queue.EventTeamCreated,
		TeamID:  team.ID.Hex(),
		ActorID: userID,
		Payload: team,
	})

	return team, nil
}

// ListTeams returns paginated teams for a user.
func (s *TeamService) ListTeams(ctx context.Context, userID string, page, limit int) (*models.TeamListResponse, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 10 {
		limit = 10
	}

	teams, total, err := s.teamRepo.FindByUserID(ctx, uid, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.TeamListResponse{
		Items: teams,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetTeam retrieves a team by slug (with caching).
func (s *TeamService) GetTeam(ctx context.Context, slug string) (*models.Team, error) {
	cacheKey := cache.TeamCacheKey(slug)
	var cached models.Team
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	team, err := s.teamRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, team, teamCacheTTL)

	return team, nil
}

// GetTeamWithRole retrieves a team by slug along with the user's role in it.
// Returns ErrTeamNotFound if the team does not exist and ErrNotTeamMember
// if the user has no membership.
func (s *TeamService) GetTeamWithRole(ctx context.Context, slug, userID string) (*models.TeamWithRole, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrNotTeamMember
	}

	team, err := s.GetTeam(ctx, slug)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, uid)
	if err != nil {
		return nil, err
	}

	return &models.TeamWithRole{Team: team, Role: member.Role}, nil
}

// UpdateTeam writes the fields present in the request to the team
// identified by slug and returns the updated team. Present values pass
// through verbatim; omitted fields keep their stored value.
func (s *TeamService) UpdateTeam(ctx context.Context, slug, actorID string, req *models.UpdateTeamRequest) (*models.Team, error) {
	// A slug change must not collide with another team
	if req.Slug != nil && *req.Slug != slug {
		_, err := s.teamRepo.FindBySlug(ctx, *req.Slug)
		if err == nil {
			return nil, apperrors.ErrTeamSlugTaken
		}
		if err != apperrors.ErrTeamNotFound {
			return nil, err
		}
	}

	team, err := s.teamRepo.UpdateBySlug(ctx, slug, repository.TeamUpdate{
		Name:   req.Name,
		Slug:   req.Slug,
		Domain: req.Domain,
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.TeamCacheKey(slug))
	if req.Slug != nil && *req.Slug != slug {
		_ = s.cache.Delete(ctx, cache.TeamCacheKey(*req.Slug))
	}

	s.emit(queue.Event{
		Type:    queue.EventTeamUpdated,
		TeamID:  team.ID.Hex(),
		ActorID: actorID,
		Payload: team,
	})

	return team, nil
}

// DeleteTeam soft deletes the team identified by slug and removes its
// memberships and pending invitations.
func (s *TeamService) DeleteTeam(ctx context.Context, slug, actorID string) error {
	team, err := s.teamRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.memberRepo.DeleteAllByTeamID(ctx, team.ID); err != nil {
		return err
	}

	if err := s.invitationRepo.DeleteAllByTeamID(ctx, team.ID); err != nil {
		return err
	}

	if err := s.teamRepo.SoftDeleteBySlug(ctx, slug); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.TeamCacheKey(slug))

	s.emit(queue.Event{
		Type:    queue.EventTeamDeleted,
		TeamID:  team.ID.Hex(),
		ActorID: actorID,
	})

	return nil
}

// LogoURL returns a presigned download URL for the team's logo, or an
// empty string when no logo has been uploaded.
func (s *TeamService) LogoURL(ctx context.Context, team *models.Team) (string, error) {
	if team.LogoKey == "" {
		return "", nil
	}
	return s.storage.GetPresignedURL(ctx, team.LogoKey, logoURLExpiry)
}

// LogoUploadURL issues a presigned upload URL for the team's logo and
// records the object key on the team.
func (s *TeamService) LogoUploadURL(ctx context.Context, team *models.Team, contentType string) (*models.LogoUploadResponse, error) {
	key := storage.TeamLogoKey(team.ID.Hex())

	url, err := s.storage.GetPresignedPutURL(ctx, key, contentType, logoURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.SetLogoKey(ctx, team.ID, key); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.TeamCacheKey(team.Slug))

	return &models.LogoUploadResponse{
		UploadURL: url,
		Key:       key,
		ExpiresIn: int(logoURLExpiry.Seconds()),
	}, nil
}

// emit queues an event for webhook delivery. Delivery is best effort;
// a full queue must not fail the API request.
func (s *TeamService) emit(event queue.Event) {
	if s.events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := s.events.Enqueue(event); err != nil {
		log.Printf("Failed to enqueue %s event: %v", event.Type, err)
	}
}
