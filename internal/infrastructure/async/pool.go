package async

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrPoolStopped is returned when a task is submitted after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

const (
	// DefaultWorkers is the worker count used when none is configured
	DefaultWorkers = 8
	// DefaultQueueSize is the task queue capacity used when none is configured
	DefaultQueueSize = 256
)

// Pool is a bounded worker pool. All asynchronous service operations and
// event handler dispatches run on it, never on the submitting goroutine.
// Submitted tasks are not cancellable; once accepted they run to completion.
type Pool struct {
	mu      sync.RWMutex
	tasks   chan func()
	wg      sync.WaitGroup
	logger  *zap.Logger
	stopped bool
}

// NewPool creates a pool and starts its workers
func NewPool(workers, queueSize int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	p := &Pool{
		tasks:  make(chan func(), queueSize),
		logger: logger,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues a task, blocking while the queue is full.
// Returns ErrPoolStopped after Stop has been called.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	p.tasks <- task
	return nil
}

// Dispatch runs the task on a pooled worker when queue space allows and
// spills onto a fresh goroutine otherwise, so it never blocks the caller.
// Tasks already running on a worker must use this instead of Submit: a
// blocking enqueue from inside the pool can deadlock it.
func (p *Pool) Dispatch(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.tasks <- task:
	default:
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(task)
		}()
	}
	return nil
}

// Stop drains the queue and waits for in-flight tasks, or until ctx expires
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", zap.Any("panic", r))
		}
	}()
	task()
}
