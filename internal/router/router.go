// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "teamstack/swagger" // Import generated swagger docs

	"teamstack/internal/authz"
	"teamstack/internal/handler"
	"teamstack/internal/middleware"
	"teamstack/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	TeamHandler       *handler.TeamHandler
	TeamMemberHandler *handler.TeamMemberHandler
	InvitationHandler *handler.TeamInvitationHandler
	Sessions          session.Resolver
	Teams             middleware.TeamRoleLookup
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Current-user routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.Sessions))
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.PUT("/me", cfg.UserHandler.UpdateMe)
			users.DELETE("/me", cfg.UserHandler.DeleteMe)
		}

		// The team slug resource dispatches on the HTTP method itself
		// and owns its session handling, so it is registered without
		// the Auth middleware.
		v1.Any("/teams/:slug", cfg.TeamHandler.Resource)

		// Team collection routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.Sessions))
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)

			// Routes below require team membership plus a policy check
			teamScoped := teams.Group("/:slug")
			{
				logo := teamScoped.Group("/logo")
				{
					logo.GET("", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionTeamRead), cfg.TeamHandler.GetLogo)
					logo.POST("", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionTeamUpdate), cfg.TeamHandler.RequestLogoUpload)
				}

				members := teamScoped.Group("/members")
				{
					members.GET("", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionMemberList), cfg.TeamMemberHandler.ListMembers)
					members.DELETE("/:userId", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionMemberRemove), cfg.TeamMemberHandler.RemoveMember)
					members.PUT("/:userId/role", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionMemberRole), cfg.TeamMemberHandler.UpdateRole)
				}
				teamScoped.POST("/leave", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionTeamRead), cfg.TeamMemberHandler.LeaveTeam)

				invitations := teamScoped.Group("/invitations")
				{
					invitations.POST("", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionInvite), cfg.InvitationHandler.CreateInvitation)
					invitations.GET("", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionInvite), cfg.InvitationHandler.ListTeamInvitations)
					invitations.DELETE("/:invitationId", middleware.TeamAccess(cfg.Teams, cfg.Authorizer, authz.ActionInvite), cfg.InvitationHandler.CancelInvitation)
				}
			}
		}

		// Invitations addressed to the current user (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(middleware.Auth(cfg.Sessions))
		{
			invitations.GET("", cfg.InvitationHandler.ListMyInvitations)
			invitations.POST("/:invitationId/accept", cfg.InvitationHandler.AcceptInvitation)
			invitations.POST("/:invitationId/decline", cfg.InvitationHandler.DeclineInvitation)
		}
	}

	return r
}
