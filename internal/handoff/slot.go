// Package handoff carries a job's Result from the worker goroutine to the UI
// thread through a single-item queue.
package handoff

import (
	"errors"

	"github.com/ytget/ai-image-generator/internal/model"
)

// ErrSlotFull is returned by Post when an unread result is still waiting
var ErrSlotFull = errors.New("handoff slot already holds an unread result")

// Slot is a single-item thread-safe queue. The send in Post happens before the
// matching receive in TryTake, so the reader always sees a fully written Result.
type Slot struct {
	ch chan model.Result
}

// NewSlot creates an empty slot
func NewSlot() *Slot {
	return &Slot{ch: make(chan model.Result, 1)}
}

// Post stores a result without blocking. It fails if the slot is occupied.
func (s *Slot) Post(res model.Result) error {
	select {
	case s.ch <- res:
		return nil
	default:
		return ErrSlotFull
	}
}

// TryTake removes and returns the waiting result, if any
func (s *Slot) TryTake() (model.Result, bool) {
	select {
	case res := <-s.ch:
		return res, true
	default:
		return model.Result{}, false
	}
}

// Empty reports whether no result is waiting
func (s *Slot) Empty() bool {
	return len(s.ch) == 0
}
