package handoff

import (
	"errors"
	"sync"
	"testing"

	"github.com/ytget/ai-image-generator/internal/model"
)

func TestSlot_PostAndTake(t *testing.T) {
	slot := NewSlot()

	if !slot.Empty() {
		t.Fatal("Expected new slot to be empty")
	}

	if _, ok := slot.TryTake(); ok {
		t.Fatal("Expected TryTake on empty slot to report false")
	}

	if err := slot.Post(model.Failure("job-1", errors.New("boom"))); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if slot.Empty() {
		t.Fatal("Expected slot to hold a result")
	}

	res, ok := slot.TryTake()
	if !ok {
		t.Fatal("Expected a result")
	}
	if res.JobID != "job-1" {
		t.Errorf("Expected JobID 'job-1', got '%s'", res.JobID)
	}

	if !slot.Empty() {
		t.Error("Expected slot to be empty after take")
	}
}

func TestSlot_HoldsAtMostOneResult(t *testing.T) {
	slot := NewSlot()

	if err := slot.Post(model.Failure("first", nil)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err := slot.Post(model.Failure("second", nil))
	if !errors.Is(err, ErrSlotFull) {
		t.Fatalf("Expected ErrSlotFull, got %v", err)
	}

	res, _ := slot.TryTake()
	if res.JobID != "first" {
		t.Errorf("Expected the first result to be kept, got '%s'", res.JobID)
	}
}

func TestSlot_ConcurrentPostersDeliverOnce(t *testing.T) {
	slot := NewSlot()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if slot.Post(model.Failure("job", nil)) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("Expected exactly one accepted post, got %d", accepted)
	}
}
