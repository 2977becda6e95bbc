package session

import (
	"errors"
	"image"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ytget/ai-image-generator/internal/generate"
	"github.com/ytget/ai-image-generator/internal/handoff"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/imaging"
	"github.com/ytget/ai-image-generator/internal/model"
	"github.com/ytget/ai-image-generator/internal/poll"
)

var (
	// ErrBusy is returned when a job is already outstanding
	ErrBusy = errors.New("image generation already in progress")

	// ErrClosed is returned after the session has been torn down
	ErrClosed = errors.New("session closed")

	// ErrWorkerUnavailable is returned when the worker refuses a job
	ErrWorkerUnavailable = errors.New("image worker unavailable")

	// ErrNoImage is returned by image actions before any image was generated
	ErrNoImage = &model.Error{Kind: model.KindFileSave, Err: errors.New("no image to download")}
)

// Options wires a Controller
type Options struct {
	Submitter    generate.Submitter
	Slot         *handoff.Slot
	PollInterval time.Duration
	Dispatch     poll.Dispatcher
	Texts        Texts
	Announcer    Announcer

	// CopyImage places an image on the clipboard. Nil disables copying.
	CopyImage func(img image.Image) error

	// Now defaults to time.Now
	Now func() time.Time
}

// Controller coordinates the input dialog, the worker and the poll loop
type Controller struct {
	submitter generate.Submitter
	poll      *poll.Loop
	texts     Texts
	announcer Announcer
	copyImage func(img image.Image) error
	now       func() time.Time

	mu        sync.Mutex
	presenter Presenter
	state     State
	closed    bool
}

// NewController creates an idle controller
func NewController(opts Options) *Controller {
	c := &Controller{
		submitter: opts.Submitter,
		texts:     opts.Texts,
		announcer: opts.Announcer,
		copyImage: opts.CopyImage,
		now:       opts.Now,
		presenter: nopPresenter{},
		state:     State{Status: model.JobStatusIdle},
	}
	if c.texts == nil {
		c.texts = i18n.NewLocalization()
	}
	if c.announcer == nil {
		c.announcer = nopAnnouncer{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	slot := opts.Slot
	if slot == nil {
		slot = handoff.NewSlot()
	}
	c.poll = poll.NewLoop(opts.PollInterval, slot, opts.Dispatch, c.HandleResult)
	return c
}

// SetPresenter attaches the UI. Nil detaches it.
func (c *Controller) SetPresenter(p Presenter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p == nil {
		p = nopPresenter{}
	}
	c.presenter = p
}

func (c *Controller) view() Presenter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presenter
}

// Submit starts generating an image for prompt
func (c *Controller) Submit(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	view := c.view()

	if prompt == "" {
		view.ShowError(c.texts.GetText(i18n.KeyEnterValidPrompt))
		c.announcer.Announce(c.texts.GetText(i18n.KeyNoValidPrompt))
		return model.ErrEmptyPrompt
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Busy() {
		running := c.state.Job.ID
		c.mu.Unlock()
		log.Printf("Session: submit ignored, job %s still running", running)
		return ErrBusy
	}
	job := model.NewJob(prompt)
	previous := c.state
	c.state.Status = model.JobStatusSubmitted
	c.state.Job = &job
	c.state.LastPrompt = prompt
	c.mu.Unlock()

	view.SetSubmitEnabled(false)
	view.ShowProgress()
	c.announcer.Announce(c.texts.GetText(i18n.KeyGenerating))
	c.poll.Start()

	if !c.submitter.Submit(job) {
		c.poll.Stop()
		c.mu.Lock()
		c.state = previous
		c.mu.Unlock()

		view.HideProgress()
		view.SetSubmitEnabled(true)
		view.ShowError(c.texts.Format(i18n.KeyGenerationError, c.texts.GetText(i18n.KeyWorkerUnavailable)))
		c.announcer.Announce(c.texts.GetText(i18n.KeyGenerationFailed))
		return ErrWorkerUnavailable
	}

	log.Printf("Session: submitted job %s: %q", job.ID, job.ShortPrompt(60))
	return nil
}

// HandleResult renders the result of the outstanding job. It is the poll
// loop's handler and runs on the UI thread.
func (c *Controller) HandleResult(res model.Result) {
	c.mu.Lock()
	if c.state.Job == nil || c.state.Job.ID != res.JobID || !c.state.Busy() {
		c.mu.Unlock()
		log.Printf("Session: ignoring stale result for %s", res.JobID)
		return
	}
	if res.IsSuccess() {
		c.state.Status = model.JobStatusSucceeded
		c.state.Image = res.Image
	} else {
		c.state.Status = model.JobStatusFailed
	}
	view := c.presenter
	c.mu.Unlock()

	view.HideProgress()
	if res.IsSuccess() {
		view.ShowResult(res.Image)
		c.announcer.Announce(c.texts.GetText(i18n.KeyGenerated))
	} else {
		view.ShowError(c.failureMessage(res))
		c.announcer.Announce(c.texts.GetText(i18n.KeyGenerationFailed))
	}
	view.SetSubmitEnabled(true)
}

// failureMessage localizes a failed result for display. The error detail
// comes from the worker and is shown as is.
func (c *Controller) failureMessage(res model.Result) string {
	detail := c.texts.GetText(i18n.KeyUnknownError)
	switch {
	case res.Err != nil:
		detail = res.Err.Error()
	case res.Message != "":
		detail = strings.TrimPrefix(res.Message, model.FailurePrefix)
	}
	return c.texts.Format(i18n.KeyGenerationError, detail)
}

// Clear resets the prompt, the stored image and the remembered prompt
func (c *Controller) Clear() {
	c.mu.Lock()
	c.state.Image = nil
	c.state.LastPrompt = ""
	if !c.state.Busy() {
		c.state.Status = model.JobStatusIdle
		c.state.Job = nil
	}
	view := c.presenter
	c.mu.Unlock()

	view.ClearInput()
	view.ShowInfo(c.texts.GetText(i18n.KeyInputCleared))
	c.announcer.Announce(c.texts.GetText(i18n.KeyInputCleared))
}

// RequestClose tears the session down unless a job is outstanding. It
// reports whether the window may close.
func (c *Controller) RequestClose() bool {
	c.mu.Lock()
	if c.state.Busy() {
		view := c.presenter
		c.mu.Unlock()

		view.ShowWarning(c.texts.GetText(i18n.KeyWaitForGeneration))
		c.announcer.Announce(c.texts.GetText(i18n.KeyCannotClose))
		return false
	}
	alreadyClosed := c.closed
	c.closed = true
	c.state.Image = nil
	c.state.Job = nil
	c.state.Status = model.JobStatusIdle
	c.mu.Unlock()

	if alreadyClosed {
		return true
	}

	c.poll.Stop()
	c.submitter.Close()
	log.Printf("Session: closed")
	return true
}

// SaveImage writes the stored image following imaging.Save rules and returns
// the path written
func (c *Controller) SaveImage(path string, kind model.ImageKind) (string, error) {
	state := c.State()
	if !state.HasImage() {
		c.announcer.Announce(c.texts.GetText(i18n.KeyNoImageToDownload))
		return "", ErrNoImage
	}

	written, err := imaging.Save(state.Image.Decoded, path, kind, c.now())
	if err != nil {
		log.Printf("Session: save to %s failed: %v", path, err)
		c.announcer.Announce(c.texts.GetText(i18n.KeyFailedToSave))
		return "", err
	}

	log.Printf("Session: image saved to %s", written)
	message := c.texts.Format(i18n.KeyImageSavedAs, written)
	c.view().ShowInfo(message)
	c.announcer.Announce(message)
	return written, nil
}

// CopyImage places the stored image on the clipboard
func (c *Controller) CopyImage() error {
	state := c.State()
	if !state.HasImage() {
		c.announcer.Announce(c.texts.GetText(i18n.KeyNoImageToDownload))
		return ErrNoImage
	}
	if c.copyImage == nil {
		return errors.New("clipboard not available")
	}
	if err := c.copyImage(state.Image.Decoded); err != nil {
		log.Printf("Session: copy failed: %v", err)
		return err
	}
	c.announcer.Announce(c.texts.GetText(i18n.KeyImageCopied))
	return nil
}

// Busy reports whether a job is outstanding
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Busy()
}

// Image returns the most recent successful image, or nil
func (c *Controller) Image() *model.GeneratedImage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Image
}

// LastPrompt returns the prompt of the most recent submission
func (c *Controller) LastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.LastPrompt
}

// State returns a snapshot of the session
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Polling reports whether the poll loop is waiting for a result
func (c *Controller) Polling() bool {
	return c.poll.Running()
}
