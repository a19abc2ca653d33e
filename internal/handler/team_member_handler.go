package handler

import (
	"errors"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/middleware"
	"teamstack/internal/models"
	"teamstack/internal/service"
	"teamstack/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for team member operations.
type TeamMemberHandler struct {
	service service.TeamMemberServicer
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(service service.TeamMemberServicer) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// ListMembers godoc
// @Summary      List team members
// @Description  Retrieve all members of a team with user details
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        slug  path      string  true  "Team slug"
// @Success      200   {object}  response.Envelope{data=models.TeamMemberListResponse}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), team)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// RemoveMember godoc
// @Summary      Remove a team member
// @Description  Remove a member from the team. Owners cannot be removed; admins only by the owner.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        slug    path      string  true  "Team slug"
// @Param        userId  path      string  true  "Target user ID"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  response.Envelope
// @Failure      401     {object}  response.Envelope
// @Failure      403     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Failure      500     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/members/{userId} [delete]
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	actorID := middleware.GetUserID(c)
	targetUserID := c.Param("userId")

	if err := h.service.RemoveMember(c.Request.Context(), team, targetUserID, actorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotTeamMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrCannotRemoveOwner),
			errors.Is(err, apperrors.ErrCannotRemoveSelf):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrInsufficientPermissions):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{})
}

// UpdateRole godoc
// @Summary      Update a member's role
// @Description  Change a member's role to admin or member. The owner role is immutable.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        slug    path      string                    true  "Team slug"
// @Param        userId  path      string                    true  "Target user ID"
// @Param        body    body      models.UpdateRoleRequest  true  "New role"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  response.Envelope
// @Failure      401     {object}  response.Envelope
// @Failure      403     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Failure      500     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/members/{userId}/role [put]
func (h *TeamMemberHandler) UpdateRole(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	actorID := middleware.GetUserID(c)
	targetUserID := c.Param("userId")

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), team, targetUserID, actorID, req.Role); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotTeamMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvalidRole),
			errors.Is(err, apperrors.ErrCannotChangeOwnerRole):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrInsufficientPermissions):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{})
}

// LeaveTeam godoc
// @Summary      Leave a team
// @Description  Remove the authenticated user from the team. Owners must transfer ownership first.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        slug  path      string  true  "Team slug"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/leave [post]
func (h *TeamMemberHandler) LeaveTeam(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	userID := middleware.GetUserID(c)

	if err := h.service.LeaveTeam(c.Request.Context(), team, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotTeamMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrOwnerCannotLeave):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{})
}
