package generate

import (
	"context"

	"github.com/ytget/ai-image-generator/internal/model"
)

// Generator produces an image for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (*model.GeneratedImage, error)
}

// Submitter accepts jobs for background generation
type Submitter interface {
	// Submit hands the job to the worker. It returns false if the job was refused.
	Submit(job model.Job) bool

	// Close waits for outstanding work and releases the worker
	Close()
}
