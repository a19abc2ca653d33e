package queue

import "context"

// Queue defines the interface for event queue operations.
type Queue interface {
	// Enqueue adds an event to the queue.
	Enqueue(event Event) error
	// Dequeue removes and returns the next event from the queue.
	Dequeue(ctx context.Context) (Event, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of events in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)
