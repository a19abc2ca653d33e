package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"simple id", "123", "user:123"},
		{"objectid format", "507f1f77bcf86cd799439011", "user:507f1f77bcf86cd799439011"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserCacheKey(tt.userID))
		})
	}
}

func TestTeamCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		expected string
	}{
		{"simple slug", "acme", "team:slug:acme"},
		{"hyphenated slug", "acme-corp", "team:slug:acme-corp"},
		{"empty string", "", "team:slug:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TeamCacheKey(tt.slug))
		})
	}
}
