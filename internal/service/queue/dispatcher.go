// Package queue provides a worker pool that writes usage events off the request path.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/naotica/studio/internal/domain"
)

var (
	// ErrQueueFull is returned when the event queue is at capacity.
	ErrQueueFull = errors.New("usage queue is full")
	// ErrDispatcherStopped is returned when enqueueing after Stop.
	ErrDispatcherStopped = errors.New("dispatcher has been stopped")
)

// EventProcessor handles one usage event.
type EventProcessor func(ctx context.Context, event *domain.UsageEvent)

// Dispatcher fans usage events out to a fixed number of workers.
type Dispatcher struct {
	events     chan *domain.UsageEvent
	workerWg   sync.WaitGroup
	numWorkers int
	processor  EventProcessor

	// mu guards stopped and the close of events.
	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a Dispatcher. Workers do not run until Start.
func NewDispatcher(numWorkers, queueSize int, processor EventProcessor) *Dispatcher {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 10
	}

	return &Dispatcher{
		events:     make(chan *domain.UsageEvent, queueSize),
		numWorkers: numWorkers,
		processor:  processor,
	}
}

// Start starts the worker pool. Workers exit when ctx is canceled or the
// queue has been drained after Stop.
func (d *Dispatcher) Start(ctx context.Context) {
	slog.Info("Starting usage dispatcher",
		"workers", d.numWorkers,
		"queue_size", cap(d.events),
	)

	for i := 0; i < d.numWorkers; i++ {
		d.workerWg.Add(1)
		go d.worker(ctx, i)
	}
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.workerWg.Done()

	slog.Debug("Worker started", "worker_id", id)

	for {
		select {
		case event, ok := <-d.events:
			if !ok {
				slog.Debug("Worker stopping (queue drained)", "worker_id", id)
				return
			}
			if d.processor != nil {
				d.processor(ctx, event)
			}

		case <-ctx.Done():
			slog.Debug("Worker stopping (context canceled)", "worker_id", id)
			return
		}
	}
}

// Enqueue adds an event without blocking. It returns ErrQueueFull when the
// queue is at capacity.
func (d *Dispatcher) Enqueue(event *domain.UsageEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.events <- event:
		return nil
	default:
		slog.Warn("Usage queue is full, dropping event",
			"tool", event.Tool,
			"queue_size", len(d.events),
		)
		return ErrQueueFull
	}
}

// Stop rejects new events, lets the workers drain what is queued and waits for them.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.events)
	d.mu.Unlock()

	slog.Info("Stopping usage dispatcher", "pending", len(d.events))
	d.workerWg.Wait()
	slog.Info("Usage dispatcher stopped")
}

// QueueSize returns the number of queued events.
func (d *Dispatcher) QueueSize() int {
	return len(d.events)
}

// QueueCapacity returns the maximum capacity of the queue.
func (d *Dispatcher) QueueCapacity() int {
	return cap(d.events)
}

// WorkerCount returns the number of workers.
func (d *Dispatcher) WorkerCount() int {
	return d.numWorkers
}
