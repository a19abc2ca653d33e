package testutil

import (
	"context"
	"time"
)

// DefaultTestTimeout bounds how long a single test operation may block.
const DefaultTestTimeout = 10 * time.Second

// TestContext creates a context with the default test timeout.
func TestContext() (context.Context, context.CancelFunc) {
	return TestContextWithTimeout(DefaultTestTimeout)
}

// TestContextWithTimeout creates a context with a custom timeout.
func TestContextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
