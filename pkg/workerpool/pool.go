package workerpool

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrSaturated is returned by Submit when the task queue is full and
	// no overflow worker can be spawned.
	ErrSaturated = errors.New("worker pool saturated")

	// ErrClosed is returned by Submit after Shutdown has been called.
	ErrClosed = errors.New("worker pool is shut down")
)

// Task is a unit of work executed by the pool.
type Task func()

// Config holds the pool bounds. Zero or negative values fall back to the
// defaults applied by New.
type Config struct {
	CoreWorkers   int           // workers that live for the pool lifetime
	MaxWorkers    int           // hard cap including overflow workers
	QueueCapacity int           // buffered tasks awaiting a worker
	IdleTimeout   time.Duration // how long an overflow worker waits before retiring
}

// Pool is a bounded worker pool. Core workers are started up front; when the
// queue is full, overflow workers are spawned up to MaxWorkers and retire
// after IdleTimeout without work. Submissions beyond that fail fast with
// ErrSaturated instead of blocking the caller.
type Pool struct {
	cfg   Config
	tasks chan Task
	quit  chan struct{}
	wg    sync.WaitGroup

	mu      sync.Mutex
	workers int
	closed  bool
}

// New builds the pool and starts its core workers.
func New(cfg Config) *Pool {
	if cfg.CoreWorkers < 1 {
		cfg.CoreWorkers = 1
	}
	if cfg.MaxWorkers < cfg.CoreWorkers {
		cfg.MaxWorkers = cfg.CoreWorkers
	}
	if cfg.QueueCapacity < 1 {
		cfg.QueueCapacity = 1
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Second
	}

	p := &Pool{
		cfg:     cfg,
		tasks:   make(chan Task, cfg.QueueCapacity),
		quit:    make(chan struct{}),
		workers: cfg.CoreWorkers,
	}

	for i := 0; i < cfg.CoreWorkers; i++ {
		p.wg.Add(1)
		go p.coreWorker()
	}

	return p
}

// Submit enqueues a task for asynchronous execution. It never blocks: if the
// queue is full it tries to spawn an overflow worker, and failing that
// returns ErrSaturated synchronously.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case p.tasks <- task:
		return nil
	default:
	}

	if p.workers < p.cfg.MaxWorkers {
		p.workers++
		p.wg.Add(1)
		go p.overflowWorker(task)
		return nil
	}

	return ErrSaturated
}

// Shutdown stops intake immediately and waits for in-flight and queued work
// to drain. If ctx expires first, remaining queued work is abandoned and the
// context error is returned. Idempotent.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		close(p.quit)
		return ctx.Err()
	}
}

// WorkerCount reports the current number of live workers.
func (p *Pool) WorkerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

func (p *Pool) coreWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
		}
	}
}

func (p *Pool) overflowWorker(first Task) {
	defer p.wg.Done()
	defer func() {
		p.mu.Lock()
		p.workers--
		p.mu.Unlock()
	}()

	first()

	idle := time.NewTimer(p.cfg.IdleTimeout)
	defer idle.Stop()

	for {
		select {
		case <-p.quit:
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(p.cfg.IdleTimeout)
		case <-idle.C:
			return
		}
	}
}
