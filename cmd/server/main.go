package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamstack/internal/authz"
	"teamstack/internal/cache"
	"teamstack/internal/config"
	"teamstack/internal/database"
	"teamstack/internal/handler"
	"teamstack/internal/queue"
	"teamstack/internal/repository"
	"teamstack/internal/router"
	"teamstack/internal/service"
	"teamstack/internal/session"
	"teamstack/internal/storage"
	"teamstack/internal/validator"
	"teamstack/internal/webhook"
	"teamstack/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Teamstack API
// @version         1.0
// @description     A REST API for team workspaces built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

// discardDeliverer drops events when no webhook endpoint is configured.
type discardDeliverer struct{}

func (discardDeliverer) Deliver(ctx context.Context, event queue.Event) error {
	return nil
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// Tokens and sessions
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
	tokenGenerator := auth.NewRefreshTokenGenerator()
	tokenStore := cache.NewRefreshTokenStore(redisCache)
	sessionResolver := session.NewJWTResolver(jwtManager)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamInvitationRepo := repository.NewTeamInvitationRepository(mongoDB.Database)

	// Authorization
	var authorizer authz.Authorizer
	switch cfg.AuthzMode {
	case "remote":
		authorizer = authz.NewRemoteAuthorizer(cfg.AuthzServiceURL, cfg.AuthzTimeout)
	default:
		authorizer = authz.NewLocalAuthorizer()
	}

	// Event queue and webhook delivery
	eventQueue := queue.NewMemoryQueue(cfg.EventQueueSize)
	var deliverer queue.Deliverer = discardDeliverer{}
	if cfg.WebhookURL != "" {
		deliverer = webhook.NewSender(cfg.WebhookURL, cfg.WebhookSecret, 10*time.Second)
	}
	eventProcessor := queue.NewProcessor(eventQueue, deliverer, cfg.EventWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  tokenGenerator,
		AccessTokenTTL:  cfg.AccessTokenExpiry,
		RefreshTokenTTL: cfg.RefreshTokenExpiry,
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

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start event processor
	eventProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop event processor (waits for workers)
	log.Println("Stopping event processor...")
	eventProcessor.Stop()

	log.Println("Server shutdown complete")
}
