// Package parallel provides the worker pool behind the concurrent
// fractal kernel.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines executing batches of independent
// tasks. A render loop reuses the same pool across recomputes instead
// of spawning goroutines every frame.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	tasks   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers. If workers
// is zero or negative, GOMAXPROCS is used. Workers start immediately
// and wait for tasks.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain queued tasks before exiting.
			for {
				select {
				case task := <-p.tasks:
					task()
				default:
					return
				}
			}
		case task := <-p.tasks:
			task()
		}
	}
}

// ExecuteAll runs every task on the pool and waits for all of them to
// finish. On a closed pool it is a no-op.
func (p *Pool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	for _, task := range tasks {
		wrapped := func() {
			defer pending.Done()
			task()
		}
		select {
		case p.tasks <- wrapped:
		case <-p.done:
			// Pool is closing; the task is dropped.
			pending.Done()
		}
	}

	pending.Wait()
}

// Close stops the pool after finishing queued work. It is safe to call
// Close more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
