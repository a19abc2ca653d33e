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

// UserHandler handles HTTP requests for the current user.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Retrieve the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope{data=models.User}
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// UpdateMe godoc
// @Summary      Update current user
// @Description  Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200   {object}  response.Envelope{data=models.User}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// DeleteMe godoc
// @Summary      Delete current user
// @Description  Delete the authenticated user's account
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{})
}
