// Package tasks runs loss-tolerant background work.
package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"arcana/internal/observability"
)

// task is one queued unit of background work.
type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Scheduler executes fire-and-forget side effects (e.g. view-count
// increments) away from the request path. Semantics are deliberately
// loss-tolerant: when the queue is full the task is dropped and counted, and a
// failed task is logged and never retried. Nothing scheduled here may affect
// the outcome of the request that scheduled it.
type Scheduler struct {
	queue   chan task
	wg      sync.WaitGroup
	logger  *observability.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// NewScheduler starts workers goroutines draining a queue of the given size.
func NewScheduler(workers, queueSize int) *Scheduler {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	s := &Scheduler{
		queue:   make(chan task, queueSize),
		logger:  observability.GlobalLogger,
		timeout: 5 * time.Second,
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

func (s *Scheduler) worker() {
	defer s.wg.Done()
	for t := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := t.fn(ctx); err != nil {
			s.logger.Warn("best-effort task failed",
				slog.String("task", t.name),
				slog.String("error", err.Error()),
			)
		}
		cancel()
	}
}

// Schedule enqueues fn for background execution. Returns false if the task
// was dropped because the queue was full or the scheduler is closed.
func (s *Scheduler) Schedule(name string, fn func(ctx context.Context) error) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		observability.BestEffortDrops.WithLabelValues(name).Inc()
		return false
	}
	select {
	case s.queue <- task{name: name, fn: fn}:
		s.mu.Unlock()
		return true
	default:
		s.mu.Unlock()
		observability.BestEffortDrops.WithLabelValues(name).Inc()
		s.logger.Warn("best-effort task dropped, queue full", slog.String("task", name))
		return false
	}
}

// Close stops accepting new tasks and waits for queued ones to drain.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	s.wg.Wait()
}
