package model

// JobStatus represents the lifecycle state of the session's generation job
type JobStatus string

const (
	// JobStatusIdle means no job is outstanding and a new prompt may be submitted
	JobStatusIdle JobStatus = "Idle"

	// JobStatusSubmitted means a job was handed to the worker and its result is pending
	JobStatusSubmitted JobStatus = "Submitted"

	// JobStatusSucceeded means the last job produced an image
	JobStatusSucceeded JobStatus = "Succeeded"

	// JobStatusFailed means the last job produced an error message
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while a job is in flight
func (js JobStatus) IsActive() bool {
	return js == JobStatusSubmitted
}

// IsFinished returns true if the last job reached a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusSucceeded || js == JobStatusFailed
}
