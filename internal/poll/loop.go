// Package poll drains the handoff slot from the UI thread on a recurring timer,
// so the UI never blocks waiting for the worker.
package poll

import (
	"log"
	"sync"
	"time"

	"github.com/ytget/ai-image-generator/internal/handoff"
	"github.com/ytget/ai-image-generator/internal/model"
)

// DefaultInterval is how often the slot is checked while a job is outstanding
const DefaultInterval = 100 * time.Millisecond

// Dispatcher runs fn on the interactive thread. In the app this is fyne.Do.
type Dispatcher func(fn func())

// ResultHandler receives the single result of the outstanding job on the
// interactive thread, after the loop has stopped itself.
type ResultHandler func(res model.Result)

// Loop is a restartable ticker that checks a handoff.Slot
type Loop struct {
	interval time.Duration
	slot     *handoff.Slot
	dispatch Dispatcher
	onResult ResultHandler

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewLoop creates a stopped loop. A non-positive interval uses DefaultInterval;
// a nil dispatcher calls ticks directly on the timer goroutine.
func NewLoop(interval time.Duration, slot *handoff.Slot, dispatch Dispatcher, onResult ResultHandler) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Loop{
		interval: interval,
		slot:     slot,
		dispatch: dispatch,
		onResult: onResult,
	}
}

// Start begins polling. Starting a running loop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true
	l.stop = make(chan struct{})
	go l.run(l.stop)
}

// Stop halts polling. Safe to call any number of times.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}
	l.running = false
	close(l.stop)
}

// Running reports whether the loop is polling
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) run(stop <-chan struct{}) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.dispatch(l.Tick)
		}
	}
}

// Tick checks the slot once. It does nothing when the loop is stopped or the
// slot is empty; otherwise it stops the loop and hands the result over.
func (l *Loop) Tick() {
	if !l.Running() {
		return
	}

	res, ok := l.slot.TryTake()
	if !ok {
		return
	}

	l.Stop()
	log.Printf("Poll: consumed %s result for %s", res.Kind, res.JobID)
	if l.onResult != nil {
		l.onResult(res)
	}
}
