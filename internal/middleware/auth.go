// Package middleware provides HTTP middleware for the API.
package middleware

import (
	apperrors "teamstack/internal/errors"
	"teamstack/internal/session"
	"teamstack/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
)

// Auth returns a middleware that requires a valid session on the request.
func Auth(sessions session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c.Request)
		if sess == nil {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		c.Set(UserIDKey, sess.UserID)
		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}
