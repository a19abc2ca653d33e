package service

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teamstack/internal/cache"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/queue"
	"teamstack/internal/repository"
	"teamstack/internal/repository/mocks"
	"teamstack/internal/storage"
)

// fakeCache is an in-memory Cache for service tests.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

var _ cache.Cache = (*fakeCache)(nil)

// fakeStorage is an in-memory Storage for service tests.
type fakeStorage struct {
	getURLErr error
	putURLErr error
	putKeys   []string
}

func (f *fakeStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if f.getURLErr != nil {
		return "", f.getURLErr
	}
	return "https://storage.example.com/" + key + "?signed=get", nil
}

func (f *fakeStorage) GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if f.putURLErr != nil {
		return "", f.putURLErr
	}
	f.putKeys = append(f.putKeys, key)
	return "https://storage.example.com/" + key + "?signed=put", nil
}

func (f *fakeStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	return nil
}

var _ storage.Storage = (*fakeStorage)(nil)

func strPtr(s string) *string {
	return &s
}

func newTeamService(teamRepo *mocks.MockTeamRepository, memberRepo *mocks.MockTeamMemberRepository, invitationRepo *mocks.MockTeamInvitationRepository, c cache.Cache, events queue.Queue) *TeamService {
	return NewTeamService(TeamServiceConfig{
		TeamRepo:       teamRepo,
		MemberRepo:     memberRepo,
		InvitationRepo: invitationRepo,
		Cache:          c,
		Storage:        &fakeStorage{},
		Events:         events,
	})
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	t.Run("creates team and owner membership", func(t *testing.T) {
		var createdMember *models.TeamMember
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
			CreateFunc: func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				return nil
			},
		}
		memberRepo := &mocks.MockTeamMemberRepository{
			CreateFunc: func(ctx context.Context, member *models.TeamMember) error {
				createdMember = member
				return nil
			},
		}

		svc := newTeamService(teamRepo, memberRepo, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		team, err := svc.CreateTeam(ctx, ownerID.Hex(), &models.CreateTeamRequest{
			Name: "Acme",
			Slug: "acme",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme", team.Name)
		assert.Equal(t, ownerID, team.OwnerID)
		require.NotNil(t, createdMember)
		assert.Equal(t, models.RoleOwner, createdMember.Role)
		assert.Equal(t, team.ID, createdMember.TeamID)
	})

	t.Run("rejects taken slug", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return &models.Team{Slug: slug}, nil
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.CreateTeam(ctx, ownerID.Hex(), &models.CreateTeamRequest{Name: "Acme", Slug: "acme"})

		assert.ErrorIs(t, err, apperrors.ErrTeamSlugTaken)
	})

	t.Run("rolls back team when owner membership fails", func(t *testing.T) {
		var deletedSlug string
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
			CreateFunc: func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				return nil
			},
			SoftDeleteBySlugFunc: func(ctx context.Context, slug string) error {
				deletedSlug = slug
				return nil
			},
		}
		memberRepo := &mocks.MockTeamMemberRepository{
			CreateFunc: func(ctx context.Context, member *models.TeamMember) error {
				return assert.AnError
			},
		}

		svc := newTeamService(teamRepo, memberRepo, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.CreateTeam(ctx, ownerID.Hex(), &models.CreateTeamRequest{Name: "Acme", Slug: "acme"})

		assert.Error(t, err)
		assert.Equal(t, "acme", deletedSlug)
	})

	t.Run("invalid user id", func(t *testing.T) {
		svc := newTeamService(&mocks.MockTeamRepository{}, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.CreateTeam(ctx, "not-an-object-id", &models.CreateTeamRequest{Name: "Acme", Slug: "acme"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches from repository and populates cache", func(t *testing.T) {
		calls := 0
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				calls++
				return &models.Team{ID: primitive.NewObjectID(), Name: "Acme", Slug: slug}, nil
			},
		}

		c := newFakeCache()
		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, c, nil)

		team, err := svc.GetTeam(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", team.Name)

		// Second read must come from cache
		team2, err := svc.GetTeam(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, team.ID, team2.ID)
		assert.Equal(t, 1, calls)
	})

	t.Run("not found", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.GetTeam(ctx, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestTeamService_GetTeamWithRole(t *testing.T) {
	ctx := context.Background()
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	teamRepo := &mocks.MockTeamRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
			return &models.Team{ID: teamID, Name: "Acme", Slug: slug}, nil
		},
	}

	t.Run("returns team and role", func(t *testing.T) {
		memberRepo := &mocks.MockTeamMemberRepository{
			FindByTeamAndUserFunc: func(ctx context.Context, tid, uid primitive.ObjectID) (*models.TeamMember, error) {
				assert.Equal(t, teamID, tid)
				assert.Equal(t, userID, uid)
				return &models.TeamMember{TeamID: tid, UserID: uid, Role: models.RoleAdmin}, nil
			},
		}

		svc := newTeamService(teamRepo, memberRepo, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		result, err := svc.GetTeamWithRole(ctx, "acme", userID.Hex())

		require.NoError(t, err)
		assert.Equal(t, teamID, result.Team.ID)
		assert.Equal(t, models.RoleAdmin, result.Role)
	})

	t.Run("user is not a member", func(t *testing.T) {
		memberRepo := &mocks.MockTeamMemberRepository{
			FindByTeamAndUserFunc: func(ctx context.Context, tid, uid primitive.ObjectID) (*models.TeamMember, error) {
				return nil, apperrors.ErrNotTeamMember
			},
		}

		svc := newTeamService(teamRepo, memberRepo, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.GetTeamWithRole(ctx, "acme", userID.Hex())
		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
	})

	t.Run("malformed user id", func(t *testing.T) {
		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.GetTeamWithRole(ctx, "acme", "bogus")
		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	ctx := context.Background()
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID().Hex()

	t.Run("passes present field values through verbatim", func(t *testing.T) {
		var gotUpdate repository.TeamUpdate
		teamRepo := &mocks.MockTeamRepository{
			UpdateBySlugFunc: func(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error) {
				gotUpdate = update
				return &models.Team{ID: teamID, Name: *update.Name, Slug: *update.Slug, Domain: *update.Domain}, nil
			},
		}

		events := queue.NewMemoryQueue(8)
		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), events)

		updated, err := svc.UpdateTeam(ctx, "acme", actorID, &models.UpdateTeamRequest{
			Name:   strPtr("Acme Corp"),
			Slug:   strPtr("acme"),
			Domain: strPtr("acme.io"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", updated.Name)
		require.NotNil(t, gotUpdate.Name)
		assert.Equal(t, "Acme Corp", *gotUpdate.Name)
		require.NotNil(t, gotUpdate.Domain)
		assert.Equal(t, "acme.io", *gotUpdate.Domain)

		event, err := events.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, queue.EventTeamUpdated, event.Type)
		assert.Equal(t, teamID.Hex(), event.TeamID)
		assert.Equal(t, actorID, event.ActorID)
	})

	t.Run("omitted fields are excluded from the write", func(t *testing.T) {
		var gotUpdate repository.TeamUpdate
		teamRepo := &mocks.MockTeamRepository{
			UpdateBySlugFunc: func(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error) {
				gotUpdate = update
				return &models.Team{ID: teamID, Name: *update.Name, Slug: slug, Domain: "acme.io"}, nil
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)

		updated, err := svc.UpdateTeam(ctx, "acme", actorID, &models.UpdateTeamRequest{Name: strPtr("Acme Renamed")})

		require.NoError(t, err)
		assert.Equal(t, "acme", updated.Slug)
		require.NotNil(t, gotUpdate.Name)
		assert.Equal(t, "Acme Renamed", *gotUpdate.Name)
		assert.Nil(t, gotUpdate.Slug)
		assert.Nil(t, gotUpdate.Domain)
	})

	t.Run("invalidates cache for old and new slug", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
			UpdateBySlugFunc: func(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error) {
				return &models.Team{ID: teamID, Slug: *update.Slug}, nil
			},
		}

		c := newFakeCache()
		require.NoError(t, c.Set(ctx, cache.TeamCacheKey("acme"), &models.Team{Slug: "acme"}, time.Minute))

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, c, nil)
		_, err := svc.UpdateTeam(ctx, "acme", actorID, &models.UpdateTeamRequest{Slug: strPtr("acme-corp")})

		require.NoError(t, err)
		var stale models.Team
		found, _ := c.Get(ctx, cache.TeamCacheKey("acme"), &stale)
		assert.False(t, found)
	})

	t.Run("rejects slug change that collides with another team", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return &models.Team{Slug: slug}, nil
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.UpdateTeam(ctx, "acme", actorID, &models.UpdateTeamRequest{Slug: strPtr("taken")})
		assert.ErrorIs(t, err, apperrors.ErrTeamSlugTaken)
	})

	t.Run("unknown slug", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			UpdateBySlugFunc: func(ctx context.Context, slug string, update repository.TeamUpdate) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		_, err := svc.UpdateTeam(ctx, "ghost", actorID, &models.UpdateTeamRequest{Name: strPtr("X"), Slug: strPtr("ghost")})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	ctx := context.Background()
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID().Hex()

	t.Run("deletes team with memberships and invitations", func(t *testing.T) {
		var membersCleared, invitationsCleared, softDeleted bool
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return &models.Team{ID: teamID, Slug: slug}, nil
			},
			SoftDeleteBySlugFunc: func(ctx context.Context, slug string) error {
				softDeleted = true
				return nil
			},
		}
		memberRepo := &mocks.MockTeamMemberRepository{
			DeleteAllByTeamIDFunc: func(ctx context.Context, tid primitive.ObjectID) error {
				membersCleared = true
				return nil
			},
		}
		invitationRepo := &mocks.MockTeamInvitationRepository{
			DeleteAllByTeamIDFunc: func(ctx context.Context, tid primitive.ObjectID) error {
				invitationsCleared = true
				return nil
			},
		}

		events := queue.NewMemoryQueue(8)
		svc := newTeamService(teamRepo, memberRepo, invitationRepo, newFakeCache(), events)

		require.NoError(t, svc.DeleteTeam(ctx, "acme", actorID))
		assert.True(t, membersCleared)
		assert.True(t, invitationsCleared)
		assert.True(t, softDeleted)

		event, err := events.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, queue.EventTeamDeleted, event.Type)
	})

	t.Run("unknown slug", func(t *testing.T) {
		teamRepo := &mocks.MockTeamRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		err := svc.DeleteTeam(ctx, "ghost", actorID)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestTeamService_LogoURL(t *testing.T) {
	ctx := context.Background()
	svc := newTeamService(&mocks.MockTeamRepository{}, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)

	t.Run("empty when no logo uploaded", func(t *testing.T) {
		url, err := svc.LogoURL(ctx, &models.Team{})
		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("presigns existing logo key", func(t *testing.T) {
		url, err := svc.LogoURL(ctx, &models.Team{LogoKey: "teams/abc/logo"})
		require.NoError(t, err)
		assert.Contains(t, url, "teams/abc/logo")
	})
}

func TestTeamService_LogoUploadURL(t *testing.T) {
	ctx := context.Background()
	teamID := primitive.NewObjectID()

	t.Run("issues upload url and records key", func(t *testing.T) {
		var savedKey string
		teamRepo := &mocks.MockTeamRepository{
			SetLogoKeyFunc: func(ctx context.Context, id primitive.ObjectID, key string) error {
				savedKey = key
				return nil
			},
		}

		svc := newTeamService(teamRepo, &mocks.MockTeamMemberRepository{}, &mocks.MockTeamInvitationRepository{}, newFakeCache(), nil)
		resp, err := svc.LogoUploadURL(ctx, &models.Team{ID: teamID, Slug: "acme"}, "image/png")

		require.NoError(t, err)
		assert.Equal(t, "teams/"+teamID.Hex()+"/logo", resp.Key)
		assert.Equal(t, resp.Key, savedKey)
		assert.Contains(t, resp.UploadURL, resp.Key)
		assert.Equal(t, 900, resp.ExpiresIn)
	})
}
