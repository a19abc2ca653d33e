// Package response provides the standard API response envelope.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries a human-readable error message.
type APIError struct {
	Message string `json:"message"`
}

// Envelope is the uniform response wrapper. Every endpoint returns this
// shape: data is null on failure, error is null on success.
type Envelope struct {
	Data  interface{} `json:"data"`
	Error *APIError   `json:"error"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Error: &APIError{Message: message}})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// MethodNotAllowed sends a 405 error response with an Allow header
// listing the methods the resource supports.
func MethodNotAllowed(c *gin.Context, allow string) {
	c.Header("Allow", allow)
	Error(c, http.StatusMethodNotAllowed, "Method "+c.Request.Method+" Not Allowed")
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
