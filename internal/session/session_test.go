package session

import (
	"net/http/httptest"
	"testing"
	"time"

	"teamstack/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTResolver_Resolve(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Minute)
	resolver := NewJWTResolver(manager)

	t.Run("valid token", func(t *testing.T) {
		token, err := manager.GenerateToken("507f1f77bcf86cd799439011")
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/teams/acme", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		sess := resolver.Resolve(r)
		require.NotNil(t, sess)
		assert.Equal(t, "507f1f77bcf86cd799439011", sess.UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/teams/acme", nil)
		assert.Nil(t, resolver.Resolve(r))
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/teams/acme", nil)
		r.Header.Set("Authorization", "token abc")
		assert.Nil(t, resolver.Resolve(r))
	})

	t.Run("invalid token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/teams/acme", nil)
		r.Header.Set("Authorization", "Bearer not-a-jwt")
		assert.Nil(t, resolver.Resolve(r))
	})

	t.Run("token signed with different secret", func(t *testing.T) {
		other := auth.NewJWTManager("other-secret", time.Minute)
		token, err := other.GenerateToken("507f1f77bcf86cd799439011")
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/teams/acme", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		assert.Nil(t, resolver.Resolve(r))
	})
}
