package generate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ytget/ai-image-generator/internal/handoff"
	"github.com/ytget/ai-image-generator/internal/model"
	"github.com/ytget/ai-image-generator/internal/worker"
)

// Service runs generation jobs on a single background worker and posts each
// job's Result to the handoff slot
type Service struct {
	generator Generator
	slot      *handoff.Slot
	pool      *worker.Pool
	timeout   time.Duration
}

// NewService creates a new generation service backed by a one-worker pool.
// A non-positive timeout uses DefaultTimeout.
func NewService(generator Generator, slot *handoff.Slot, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		generator: generator,
		slot:      slot,
		pool:      worker.New(1),
		timeout:   timeout,
	}
}

// Submit hands job to the worker
func (s *Service) Submit(job model.Job) bool {
	ok := s.pool.Submit(func() { s.run(job) })
	if !ok {
		log.Printf("Generate: job %s refused, worker busy or closed (%d pending)", job.ID, s.pool.Pending())
	}
	return ok
}

// Close waits for the running job and stops the worker. Safe to call more
// than once.
func (s *Service) Close() {
	s.pool.Close()
}

// run executes one job and posts exactly one result
func (s *Service) run(job model.Job) {
	res := s.execute(job)
	if err := s.slot.Post(res); err != nil {
		log.Printf("Generate: dropping %s result for job %s: %v", res.Kind, job.ID, err)
	}
}

func (s *Service) execute(job model.Job) (res model.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Generate: job %s panicked: %v", job.ID, r)
			res = model.Failure(job.ID, fmt.Errorf("internal error: %v", r))
		}
	}()

	log.Printf("Generate: job %s started: %q", job.ID, job.ShortPrompt(60))
	started := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	img, err := s.generator.Generate(ctx, job.Prompt)
	if err != nil {
		log.Printf("Generate: job %s failed after %v: %v", job.ID, time.Since(started).Round(time.Millisecond), err)
		return model.Failure(job.ID, err)
	}
	if img == nil {
		return model.Failure(job.ID, model.Errorf(model.KindDecode, "invalid image data: empty result"))
	}

	log.Printf("Generate: job %s finished in %v (%s, %dx%d)", job.ID,
		time.Since(started).Round(time.Millisecond), img.Kind, img.Width, img.Height)
	return model.Success(job.ID, img)
}
