package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	t.Run("matches correct password", func(t *testing.T) {
		assert.NoError(t, CheckPassword("s3cret-pass", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		assert.Error(t, CheckPassword("wrong-pass", hash))
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		assert.Error(t, CheckPassword("s3cret-pass", "not-a-hash"))
	})
}
