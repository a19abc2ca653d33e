package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenGenerator_Generate(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	token, familyID, err := gen.Generate()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "rt_"))
	assert.Len(t, familyID, 16)
	assert.Contains(t, token, familyID)
}

func TestRefreshTokenGenerator_GenerateWithFamily(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	_, familyID, err := gen.Generate()
	require.NoError(t, err)

	token, err := gen.GenerateWithFamily(familyID)

	require.NoError(t, err)
	extracted, err := gen.ExtractFamilyID(token)
	require.NoError(t, err)
	assert.Equal(t, familyID, extracted)
}

func TestRefreshTokenGenerator_ExtractFamilyID(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", "rt_0123456789abcdef_00112233445566778899aabbccddeeff", false},
		{"missing prefix", "xx_0123456789abcdef_00112233445566778899aabbccddeeff", true},
		{"too few parts", "rt_0123456789abcdef", true},
		{"short family id", "rt_0123_00112233445566778899aabbccddeeff", true},
		{"non-hex family id", "rt_zzzzzzzzzzzzzzzz_00112233445566778899aabbccddeeff", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			familyID, err := gen.ExtractFamilyID(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0123456789abcdef", familyID)
		})
	}
}

func TestRefreshTokenGenerator_Hash(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	h1 := gen.Hash("token-a")
	h2 := gen.Hash("token-a")
	h3 := gen.Hash("token-b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // hex-encoded SHA-256
}

func TestRefreshTokenGenerator_CompareHashes(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	h := gen.Hash("token-a")

	assert.True(t, gen.CompareHashes(h, gen.Hash("token-a")))
	assert.False(t, gen.CompareHashes(h, gen.Hash("token-b")))
	assert.False(t, gen.CompareHashes(h, ""))
}
