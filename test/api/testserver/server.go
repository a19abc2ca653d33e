//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"sync"
	"time"

	"teamstack/internal/authz"
	"teamstack/internal/cache"
	"teamstack/internal/handler"
	"teamstack/internal/queue"
	"teamstack/internal/repository"
	"teamstack/internal/router"
	"teamstack/internal/service"
	"teamstack/internal/session"
	"teamstack/internal/storage"
	"teamstack/pkg/auth"
	"teamstack/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// RecordingDeliverer collects delivered events so tests can assert on them.
type RecordingDeliverer struct {
	mu     sync.Mutex
	events []queue.Event
}

// Deliver records the event.
func (d *RecordingDeliverer) Deliver(ctx context.Context, event queue.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

// Events returns a copy of all delivered events.
func (d *RecordingDeliverer) Events() []queue.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]queue.Event, len(d.events))
	copy(out, d.events)
	return out
}

// Reset clears recorded events.
func (d *RecordingDeliverer) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = nil
}

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo           repository.UserRepository
	TeamRepo           repository.TeamRepository
	TeamMemberRepo     repository.TeamMemberRepository
	TeamInvitationRepo repository.TeamInvitationRepository

	// Services (for direct service access in tests)
	AuthService           service.AuthServicer
	UserService           service.UserServicer
	TeamService           service.TeamServicer
	TeamMemberService     service.TeamMemberServicer
	TeamInvitationService service.TeamInvitationServicer

	// Auth
	JWTManager *auth.JWTManager

	// Events
	EventQueue     *queue.MemoryQueue
	EventProcessor *queue.Processor
	Webhooks       *RecordingDeliverer
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Tokens and sessions
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)
	tokenGenerator := auth.NewRefreshTokenGenerator()
	tokenStore := cache.NewRefreshTokenStore(redisCache)
	sessionResolver := session.NewJWTResolver(jwtManager)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamInvitationRepo := repository.NewTeamInvitationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer()

	// Event queue with a recording deliverer
	eventQueue := queue.NewMemoryQueue(100)
	webhooks := &RecordingDeliverer{}
	eventProcessor := queue.NewProcessor(eventQueue, webhooks, 2)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  tokenGenerator,
		AccessTokenTTL:  TestAccessTokenExpiry,
		RefreshTokenTTL: TestRefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	teamService := service.NewTeamService(service.TeamServiceConfig{
		TeamRepo:       teamRepo,
		MemberRepo:     teamMemberRepo,
		InvitationRepo: teamInvitationRepo,
		Cache:          redisCache,
		Storage:        s3Client,
		Events:         eventQueue,
	})
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, userRepo, eventQueue)
	teamInvitationService := service.NewTeamInvitationService(teamInvitationRepo, teamMemberRepo, teamRepo, userRepo, eventQueue)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService, sessionResolver, authorizer)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	invitationHandler := handler.NewTeamInvitationHandler(teamInvitationService, userService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		TeamHandler:       teamHandler,
		TeamMemberHandler: teamMemberHandler,
		InvitationHandler: invitationHandler,
		Sessions:          sessionResolver,
		Teams:             teamService,
		Authorizer:        authorizer,
	})

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		TeamRepo:              teamRepo,
		TeamMemberRepo:        teamMemberRepo,
		TeamInvitationRepo:    teamInvitationRepo,
		AuthService:           authService,
		UserService:           userService,
		TeamService:           teamService,
		TeamMemberService:     teamMemberService,
		TeamInvitationService: teamInvitationService,
		JWTManager:            jwtManager,
		EventQueue:            eventQueue,
		EventProcessor:        eventProcessor,
		Webhooks:              webhooks,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartEventProcessor starts the event delivery processor.
func (ts *TestServer) StartEventProcessor(ctx context.Context) {
	ts.EventProcessor.Start(ctx)
}

// StopEventProcessor stops the processor and resets the queue.
// This ensures the queue can be used by subsequent tests.
func (ts *TestServer) StopEventProcessor() {
	ts.EventProcessor.Stop()
	// Reset the queue so it can be used again
	ts.EventQueue.Reset()
	ts.Webhooks.Reset()
	// Create a new processor since the old one has shutdown state
	ts.EventProcessor = queue.NewProcessor(ts.EventQueue, ts.Webhooks, 2)
}
