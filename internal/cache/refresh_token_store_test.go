package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"teamstack/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is a map-backed Cache for store tests. It does not implement
// RedisClientProvider, so the store exercises its rotation fallback.
type fakeCache struct {
	data map[string][]byte
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data, key)
	return nil
}

func TestRefreshTokenStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRefreshTokenStore(newFakeCache())

	data := &cache.RefreshTokenData{
		UserID:           "user123",
		CurrentTokenHash: "hash123",
		ExpiresAt:        time.Now().Add(24 * time.Hour),
		CreatedAt:        time.Now(),
	}

	require.NoError(t, store.Create(ctx, "family-1", data, 24*time.Hour))

	got, err := store.Get(ctx, "family-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user123", got.UserID)
	assert.Equal(t, "hash123", got.CurrentTokenHash)
	assert.Empty(t, got.PreviousTokenHash)
}

func TestRefreshTokenStore_Get_Missing(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRefreshTokenStore(newFakeCache())

	got, err := store.Get(ctx, "missing-family")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRefreshTokenStore_Get_CacheError(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	fc.err = errors.New("cache error")
	store := cache.NewRefreshTokenStore(fc)

	got, err := store.Get(ctx, "family-1")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRefreshTokenStore_Rotate(t *testing.T) {
	ctx := context.Background()

	t.Run("shifts current hash to previous", func(t *testing.T) {
		store := cache.NewRefreshTokenStore(newFakeCache())
		require.NoError(t, store.Create(ctx, "family-1", &cache.RefreshTokenData{
			UserID:           "user123",
			CurrentTokenHash: "hash-old",
		}, time.Hour))

		err := store.Rotate(ctx, "family-1", "hash-new", time.Hour)

		require.NoError(t, err)
		got, err := store.Get(ctx, "family-1")
		require.NoError(t, err)
		assert.Equal(t, "hash-new", got.CurrentTokenHash)
		assert.Equal(t, "hash-old", got.PreviousTokenHash)
	})

	t.Run("errors for unknown family", func(t *testing.T) {
		store := cache.NewRefreshTokenStore(newFakeCache())

		err := store.Rotate(ctx, "no-such-family", "hash-new", time.Hour)

		assert.Error(t, err)
	})
}

func TestRefreshTokenStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRefreshTokenStore(newFakeCache())

	require.NoError(t, store.Create(ctx, "family-1", &cache.RefreshTokenData{
		UserID:           "user123",
		CurrentTokenHash: "hash123",
	}, time.Hour))

	require.NoError(t, store.Delete(ctx, "family-1"))

	got, err := store.Get(ctx, "family-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
