package session

import "github.com/ytget/ai-image-generator/internal/model"

// State is a snapshot of the session
type State struct {
	Status     model.JobStatus
	Job        *model.Job
	LastPrompt string
	Image      *model.GeneratedImage
}

// Busy reports whether a job is outstanding
func (s State) Busy() bool {
	return s.Status.IsActive()
}

// HasImage reports whether a successful image is held
func (s State) HasImage() bool {
	return s.Image != nil && s.Image.Decoded != nil
}
