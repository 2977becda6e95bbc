package model

// ResultKind tags a Result as success or failure
type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultFailure ResultKind = "failure"
)

// FailurePrefix starts the diagnostic message of every failure. The UI
// shows its own localized wording.
const FailurePrefix = "Error generating image: "

// Result is the single outcome of a Job, handed from the worker to the UI thread
type Result struct {
	JobID   string
	Kind    ResultKind
	Image   *GeneratedImage
	Message string
	Err     error
}

// Success builds a success result carrying the generated image
func Success(jobID string, img *GeneratedImage) Result {
	return Result{
		JobID: jobID,
		Kind:  ResultSuccess,
		Image: img,
	}
}

// Failure builds a failure result with a human-readable message
func Failure(jobID string, err error) Result {
	msg := FailurePrefix + "unknown error"
	if err != nil {
		msg = FailurePrefix + err.Error()
	}
	return Result{
		JobID:   jobID,
		Kind:    ResultFailure,
		Message: msg,
		Err:     err,
	}
}

// IsSuccess reports whether the result carries an image
func (r Result) IsSuccess() bool {
	return r.Kind == ResultSuccess && r.Image != nil
}
