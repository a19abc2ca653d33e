package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestJWTManager_ValidateToken_Invalid(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("rejects garbage token", func(t *testing.T) {
		claims, err := manager.ValidateToken("not-a-token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.GenerateToken("user-123")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects token signed with a different algorithm", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: "user-123"})
		token, err := raw.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken("user-123")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
