package queue

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Deliverer delivers an event to its destination.
type Deliverer interface {
	Deliver(ctx context.Context, event Event) error
}

// Processor delivers events from the queue to a Deliverer.
type Processor struct {
	queue        *MemoryQueue
	deliverer    Deliverer
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new event delivery processor.
func NewProcessor(queue *MemoryQueue, deliverer Deliverer, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		deliverer:   deliverer,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing events with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Event processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Event processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		event, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processEvent(ctx, event)
	}
}

func (p *Processor) processEvent(ctx context.Context, event Event) {
	log.Printf("Delivering event %s for team %s (attempt %d)", event.Type, event.TeamID, event.RetryCount+1)

	if err := p.deliverer.Deliver(ctx, event); err != nil {
		log.Printf("Delivery failed for event %s (team %s): %v", event.Type, event.TeamID, err)
		p.handleFailure(event)
		return
	}

	log.Printf("Delivered event %s for team %s", event.Type, event.TeamID)
}

func (p *Processor) handleFailure(event Event) {
	event.RetryCount++

	if event.RetryCount >= MaxRetries {
		log.Printf("Max retries reached for event %s (team %s), dropping", event.Type, event.TeamID)
		return
	}

	delay := RetryDelay * time.Duration(1<<uint(event.RetryCount-1))
	log.Printf("Retrying event %s in %v (attempt %d/%d)", event.Type, delay, event.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx so an
	// in-flight retry timer is cut short during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for event %s, dropping", event.Type)
		case <-time.After(delay):
			if err := p.queue.Enqueue(event); err != nil {
				log.Printf("Failed to re-enqueue event %s: %v", event.Type, err)
			}
		}
	}()
}
