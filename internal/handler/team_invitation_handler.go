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

// TeamInvitationHandler handles HTTP requests for invitation operations.
type TeamInvitationHandler struct {
	service service.TeamInvitationServicer
	users   service.UserServicer
}

// NewTeamInvitationHandler creates a new TeamInvitationHandler.
func NewTeamInvitationHandler(service service.TeamInvitationServicer, users service.UserServicer) *TeamInvitationHandler {
	return &TeamInvitationHandler{service: service, users: users}
}

// requesterEmail resolves the authenticated user's email. Invitations
// are keyed by email, not user ID.
func (h *TeamInvitationHandler) requesterEmail(c *gin.Context) (string, error) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}

// CreateInvitation godoc
// @Summary      Invite a user to the team
// @Description  Create a pending invitation for an email address
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        slug  path      string                          true  "Team slug"
// @Param        body  body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201   {object}  response.Envelope{data=models.TeamInvitation}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/invitations [post]
func (h *TeamInvitationHandler) CreateInvitation(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	inviterID := middleware.GetUserID(c)

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.service.CreateInvitation(c.Request.Context(), team, inviterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyMember),
			errors.Is(err, apperrors.ErrPendingInvitation):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, invitation)
}

// ListTeamInvitations godoc
// @Summary      List team invitations
// @Description  Retrieve all pending invitations for a team
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        slug  path      string  true  "Team slug"
// @Success      200   {object}  response.Envelope{data=models.InvitationListResponse}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/invitations [get]
func (h *TeamInvitationHandler) ListTeamInvitations(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	result, err := h.service.ListTeamInvitations(c.Request.Context(), team)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CancelInvitation godoc
// @Summary      Cancel an invitation
// @Description  Cancel a pending invitation belonging to the team
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        slug          path      string  true  "Team slug"
// @Param        invitationId  path      string  true  "Invitation ID"
// @Success      200           {object}  response.Envelope
// @Failure      401           {object}  response.Envelope
// @Failure      403           {object}  response.Envelope
// @Failure      404           {object}  response.Envelope
// @Failure      500           {object}  response.Envelope
// @Security     BearerAuth
// @Router       /teams/{slug}/invitations/{invitationId} [delete]
func (h *TeamInvitationHandler) CancelInvitation(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		response.BadRequest(c, "team not found in context")
		return
	}

	if err := h.service.CancelInvitation(c.Request.Context(), team, c.Param("invitationId")); err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{})
}

// ListMyInvitations godoc
// @Summary      List my invitations
// @Description  Retrieve pending invitations addressed to the authenticated user's email
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope{data=models.MyInvitationListResponse}
// @Failure      401  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /invitations [get]
func (h *TeamInvitationHandler) ListMyInvitations(c *gin.Context) {
	email, err := h.requesterEmail(c)
	if err != nil {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	result, err := h.service.ListMyInvitations(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AcceptInvitation godoc
// @Summary      Accept an invitation
// @Description  Accept a pending invitation and join the team
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        invitationId  path      string  true  "Invitation ID"
// @Success      200           {object}  response.Envelope{data=models.AcceptInvitationResponse}
// @Failure      400           {object}  response.Envelope
// @Failure      401           {object}  response.Envelope
// @Failure      403           {object}  response.Envelope
// @Failure      404           {object}  response.Envelope
// @Failure      500           {object}  response.Envelope
// @Security     BearerAuth
// @Router       /invitations/{invitationId}/accept [post]
func (h *TeamInvitationHandler) AcceptInvitation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	email, err := h.requesterEmail(c)
	if err != nil {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	result, err := h.service.AcceptInvitation(c.Request.Context(), c.Param("invitationId"), userID, email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationExpired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// DeclineInvitation godoc
// @Summary      Decline an invitation
// @Description  Decline a pending invitation addressed to the authenticated user
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        invitationId  path      string  true  "Invitation ID"
// @Success      200           {object}  response.Envelope
// @Failure      401           {object}  response.Envelope
// @Failure      403           {object}  response.Envelope
// @Failure      404           {object}  response.Envelope
// @Failure      500           {object}  response.Envelope
// @Security     BearerAuth
// @Router       /invitations/{invitationId}/decline [post]
func (h *TeamInvitationHandler) DeclineInvitation(c *gin.Context) {
	email, err := h.requesterEmail(c)
	if err != nil {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	if err := h.service.DeclineInvitation(c.Request.Context(), c.Param("invitationId"), email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{})
}
