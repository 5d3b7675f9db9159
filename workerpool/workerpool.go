// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fixed-size pool of worker goroutines where
// every worker owns its own inbound channel. Callers decide which worker
// runs an item; the pool never moves work between workers.
//
// Usage:
//
//	pool := workerpool.New(4)
//	for i, job := range jobs {
//	    if err := pool.Submit(i%pool.NumWorkers(), job); err != nil {
//	        return err
//	    }
//	}
//	pool.Close()
//	pool.Wait()
package workerpool

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-matpool/num"
)

var (
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("workerpool: pool is closed")

	// ErrNoSuchWorker is returned by Submit for an out-of-range worker index.
	ErrNoSuchWorker = errors.New("workerpool: no such worker")
)

// WorkerState is the lifecycle state of a single worker.
type WorkerState int32

const (
	// Idle workers are blocked on their channel.
	Idle WorkerState = iota
	// Busy workers are running an item.
	Busy
	// Closed workers have drained their channel and exited.
	Closed
)

// String returns a human-readable name for the state.
func (s WorkerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Pool is a fixed set of workers, each consuming from a dedicated channel.
type Pool struct {
	workers []*worker
	logger  *slog.Logger

	// mu guards closed against concurrent Submit/Close so that no send
	// happens on a closed channel.
	mu     sync.RWMutex
	closed bool

	closeOnce sync.Once
	exited    sync.WaitGroup
}

type worker struct {
	id        int
	workC     chan func()
	state     atomic.Int32
	completed atomic.Int64
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for worker lifecycle and failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a pool with numWorkers workers, spawned immediately.
// If numWorkers <= 0, uses num.DefaultWorkers.
func New(numWorkers int, opts ...Option) *Pool {
	if numWorkers <= 0 {
		numWorkers = num.DefaultWorkers()
	}

	p := &Pool{
		workers: make([]*worker, numWorkers),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.exited.Add(numWorkers)
	for i := range numWorkers {
		w := &worker{
			id: i,
			// Submit blocks only once this queue is full.
			workC: make(chan func(), 16),
		}
		p.workers[i] = w
		go p.run(w)
	}
	return p
}

// run is the main loop for each worker goroutine.
func (p *Pool) run(w *worker) {
	defer p.exited.Done()
	p.logger.Debug("worker started", "worker", w.id)
	for fn := range w.workC {
		w.state.Store(int32(Busy))
		p.exec(w, fn)
		w.completed.Add(1)
		w.state.Store(int32(Idle))
	}
	w.state.Store(int32(Closed))
	p.logger.Debug("worker exited", "worker", w.id, "completed", w.completed.Load())
}

// exec runs one item, keeping the worker alive if it panics.
func (p *Pool) exec(w *worker, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("work item panicked", "worker", w.id, "panic", r)
		}
	}()
	fn()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return len(p.workers)
}

// Submit queues fn on the given worker's channel. It blocks only while that
// worker's queue is full.
func (p *Pool) Submit(worker int, fn func()) error {
	if worker < 0 || worker >= len(p.workers) {
		return fmt.Errorf("%w: %d (pool has %d)", ErrNoSuchWorker, worker, len(p.workers))
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	p.workers[worker].workC <- fn
	return nil
}

// Close stops accepting work and closes every worker channel. Workers finish
// what is already queued and then exit. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		for _, w := range p.workers {
			close(w.workC)
		}
	})
}

// Wait blocks until every worker has exited. It only returns after Close.
func (p *Pool) Wait() {
	p.exited.Wait()
}

// State returns the current state of worker i.
func (p *Pool) State(i int) WorkerState {
	return WorkerState(p.workers[i].state.Load())
}

// Completed returns how many items each worker has finished.
func (p *Pool) Completed() []int64 {
	out := make([]int64, len(p.workers))
	for i, w := range p.workers {
		out[i] = w.completed.Load()
	}
	return out
}
