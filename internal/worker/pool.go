// Package worker runs background jobs on a fixed-size pool with strict
// back-pressure: a one-slot queue that refuses work instead of blocking.
package worker

import (
	"log"
	"sync"
)

// Task is a unit of background work. It must not touch UI state.
type Task func()

// Pool is a fixed-size worker pool with a 1-slot input queue
type Pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu     sync.Mutex
	busy   int
	closed bool
}

// New creates a worker pool with size workers. Size is clamped to at least 1.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{jobs: make(chan Task, 1)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for task := range p.jobs {
				p.run(id, task)
			}
		}(i)
	}
}

func (p *Pool) run(id int, task Task) {
	defer func() {
		p.mu.Lock()
		p.busy--
		p.mu.Unlock()
	}()
	log.Printf("Worker %d: starting task", id)
	task()
	log.Printf("Worker %d: task returned", id)
}

// Submit enqueues a task if the pool is open and the single-slot queue is free.
// Returns false if the task was dropped.
func (p *Pool) Submit(task Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || task == nil {
		return false
	}

	select {
	case p.jobs <- task:
		p.busy++
		return true
	default:
		return false
	}
}

// Pending returns the number of tasks queued or running
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Close stops the pool after draining current work. Safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.wg.Wait()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
