// Package session resolves the caller's session from an HTTP request.
package session

import (
	"net/http"
	"strings"

	"teamstack/pkg/auth"
)

// Session holds the request-scoped identity of the caller.
type Session struct {
	UserID string
}

// Resolver resolves a session from a request. A nil result means no
// valid session is present.
type Resolver interface {
	Resolve(r *http.Request) *Session
}

// JWTResolver resolves sessions from Bearer access tokens.
type JWTResolver struct {
	tokens auth.TokenManager
}

// NewJWTResolver creates a Resolver backed by the given token manager.
func NewJWTResolver(tokens auth.TokenManager) *JWTResolver {
	return &JWTResolver{tokens: tokens}
}

// Resolve validates the Authorization header and returns the session,
// or nil when the header is missing, malformed, or the token is invalid.
func (j *JWTResolver) Resolve(r *http.Request) *Session {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	claims, err := j.tokens.ValidateToken(parts[1])
	if err != nil {
		return nil
	}

	return &Session{UserID: claims.UserID}
}

var _ Resolver = (*JWTResolver)(nil)
