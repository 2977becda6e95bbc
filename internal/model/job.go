package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix prefixes every generated job identifier
const JobIDPrefix = "job-"

// Job is a single prompt submitted for image generation. It is never mutated
// after creation.
type Job struct {
	ID          string
	Prompt      string
	SubmittedAt time.Time
}

// NewJob creates a job for an already trimmed, non-empty prompt
func NewJob(prompt string) Job {
	return Job{
		ID:          generateJobID(),
		Prompt:      prompt,
		SubmittedAt: time.Now(),
	}
}

// ShortPrompt returns the prompt collapsed to one line and cut to max runes,
// suitable for logs and window titles.
func (j Job) ShortPrompt(max int) string {
	flat := strings.Join(strings.Fields(j.Prompt), " ")
	runes := []rune(flat)
	if max <= 0 || len(runes) <= max {
		return flat
	}
	return string(runes[:max]) + "..."
}

// generateJobID generates a time-ordered unique job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
