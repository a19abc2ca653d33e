// Package queue provides an in-memory event queue for background delivery.
package queue

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrQueueFull is returned when the queue is at capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned when trying to use a closed queue.
	ErrQueueClosed = errors.New("queue is closed")
)

// Event types emitted by the API.
const (
	EventTeamCreated       = "team.created"
	EventTeamUpdated       = "team.updated"
	EventTeamDeleted       = "team.deleted"
	EventMemberRemoved     = "member.removed"
	EventMemberRoleUpdated = "member.role.updated"
	EventInvitationCreated = "invitation.created"
)

// Event is a domain event queued for webhook delivery.
type Event struct {
	Type       string      `json:"type"`
	TeamID     string      `json:"teamId"`
	ActorID    string      `json:"actorId,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
	RetryCount int         `json:"-"`
}

// MemoryQueue is an in-memory event queue.
type MemoryQueue struct {
	events   chan Event
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		events:   make(chan Event, capacity),
		capacity: capacity,
	}
}

// Enqueue adds an event to the queue. Returns error if queue is full or closed.
// Lock is held during the entire operation to prevent race condition with Close().
func (q *MemoryQueue) Enqueue(event Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next event from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case event, ok := <-q.events:
		if !ok {
			return Event{}, ErrQueueClosed
		}
		return event, nil
	}
}

// Close closes the queue. No more events can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.events)
	}
}

// Reset resets the queue to a fresh state. This is primarily for testing.
func (q *MemoryQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = false
	q.events = make(chan Event, q.capacity)
}

// Len returns the current number of events in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.events)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
