//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears Mongo, Redis, and the logo bucket. Call it at
// the start of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ts.CleanupMongoDB(t)
	ts.CleanupRedis(t)
	ts.CleanupMinIO(t)
}

// CleanupMongoDB drops all Mongo collections.
func (ts *TestServer) CleanupMongoDB(t *testing.T) {
	t.Helper()
	err := ts.MongoDB.CleanupCollections(context.Background())
	require.NoError(t, err, "failed to cleanup MongoDB collections")
}

// CleanupRedis flushes all Redis keys, including token families.
func (ts *TestServer) CleanupRedis(t *testing.T) {
	t.Helper()
	err := ts.Redis.FlushDB(context.Background())
	require.NoError(t, err, "failed to flush Redis")
}

// CleanupMinIO empties the logo bucket.
func (ts *TestServer) CleanupMinIO(t *testing.T) {
	t.Helper()
	err := ts.MinIO.ClearBucket(context.Background())
	require.NoError(t, err, "failed to clear MinIO bucket")
}
