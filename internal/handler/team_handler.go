// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	"teamstack/internal/authz"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/middleware"
	"teamstack/internal/models"
	"teamstack/internal/service"
	"teamstack/internal/session"
	"teamstack/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service    service.TeamServicer
	sessions   session.Resolver
	authorizer authz.Authorizer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer, sessions session.Resolver, authorizer authz.Authorizer) *TeamHandler {
	return &TeamHandler{
		service:    service,
		sessions:   sessions,
		authorizer: authorizer,
	}
}

// Resource godoc
// @Summary      Team resource by slug
// @Description  Read, update, or delete a team. Dispatches on the HTTP method.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        slug  path      string                    true   "Team slug"
// @Param        body  body      models.UpdateTeamRequest  false  "Fields to update (PUT only)"
// @Success      200   {object}  response.Envelope{data=models.Team}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      405   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug} [get]
func (h *TeamHandler) Resource(c *gin.Context) {
	switch c.Request.Method {
	case "GET":
		// The read path funnels every failure, including a missing
		// session and a policy denial, through one recovery boundary
		// that answers 400 with the error's message.
		if err := h.getTeam(c); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = "Something went wrong."
			}
			response.BadRequest(c, msg)
		}
	case "PUT":
		h.updateTeam(c)
	case "DELETE":
		h.deleteTeam(c)
	default:
		response.MethodNotAllowed(c, "GET, PUT, DELETE")
	}
}

// getTeam reads a team by slug. It returns rather than responds on
// failure; the caller owns the error-to-response mapping.
func (h *TeamHandler) getTeam(c *gin.Context) error {
	sess := h.sessions.Resolve(c.Request)
	if sess == nil {
		return apperrors.ErrUnauthorized
	}

	slug := c.Param("slug")

	teamRole, err := h.service.GetTeamWithRole(c.Request.Context(), slug, sess.UserID)
	if err != nil {
		return err
	}

	err = authz.CheckOrDeny(c.Request.Context(), h.authorizer, authz.CheckInput{
		Principal: authz.Principal{ID: sess.UserID, Roles: []string{teamRole.Role}},
		Resource:  authz.Resource{Kind: authz.ResourceTeam, ID: teamRole.Team.ID.Hex()},
		Action:    authz.ActionTeamRead,
	})
	if err != nil {
		return err
	}

	team, err := h.service.GetTeam(c.Request.Context(), slug)
	if err != nil {
		return err
	}

	response.OK(c, team)
	return nil
}

// updateTeam writes name, slug, and domain verbatim to the team store.
func (h *TeamHandler) updateTeam(c *gin.Context) {
	sess := h.sessions.Resolve(c.Request)
	if sess == nil {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	slug := c.Param("slug")

	teamRole, err := h.service.GetTeamWithRole(c.Request.Context(), slug, sess.UserID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allowed, err := h.authorizer.IsAllowed(c.Request.Context(), authz.CheckInput{
		Principal: authz.Principal{ID: sess.UserID, Roles: []string{teamRole.Role}},
		Resource:  authz.Resource{Kind: authz.ResourceTeam, ID: teamRole.Team.ID.Hex()},
		Action:    authz.ActionTeamUpdate,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !allowed {
		response.BadRequest(c, apperrors.ErrPermissionDenied.Error())
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), slug, sess.UserID, &req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, team)
}

// deleteTeam deletes the team identified by slug.
func (h *TeamHandler) deleteTeam(c *gin.Context) {
	sess := h.sessions.Resolve(c.Request)
	if sess == nil {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	slug := c.Param("slug")

	teamRole, err := h.service.GetTeamWithRole(c.Request.Context(), slug, sess.UserID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allowed, err := h.authorizer.IsAllowed(c.Request.Context(), authz.CheckInput{
		Principal: authz.Principal{ID: sess.UserID, Roles: []string{teamRole.Role}},
		Resource:  authz.Resource{Kind: authz.ResourceTeam, ID: teamRole.Team.ID.Hex()},
		Action:    authz.ActionTeamDelete,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !allowed {
		response.BadRequest(c, apperrors.ErrPermissionDenied.Error())
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), slug, sess.UserID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, gin.H{})
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a new team. The authenticated user becomes the owner.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Envelope{data=models.Team}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      List user's teams
// @Description  Retrieve paginated list of teams the authenticated user belongs to
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 10)"
// @Success      200    {object}  response.Envelope{data=models.TeamListResponse}
// @Failure      401    {object}  response.Envelope
// @Failure      500    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListTeams(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetLogo godoc
// @Summary      Get team logo URL
// @Description  Returns a presigned download URL for the team's logo
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        slug  path      string  true  "Team slug"
// @Success      200   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/logo [get]
func (h *TeamHandler) GetLogo(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	url, err := h.service.LogoURL(c.Request.Context(), team)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"url": url})
}

// RequestLogoUpload godoc
// @Summary      Request a logo upload URL
// @Description  Returns a presigned upload URL for the team's logo
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        slug  path      string                    true  "Team slug"
// @Param        body  body      models.LogoUploadRequest  true  "Upload details"
// @Success      200   {object}  response.Envelope{data=models.LogoUploadResponse}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/logo [post]
func (h *TeamHandler) RequestLogoUpload(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	var req models.LogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.LogoUploadURL(c.Request.Context(), team, req.ContentType)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
