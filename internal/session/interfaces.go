package session

import "github.com/ytget/ai-image-generator/internal/model"

// Presenter renders session changes. All methods are called on the UI thread.
type Presenter interface {
	SetSubmitEnabled(enabled bool)
	ShowProgress()
	HideProgress()
	ShowResult(img *model.GeneratedImage)
	ShowError(message string)
	ShowWarning(message string)
	ShowInfo(message string)
	ClearInput()
}

// Announcer speaks or otherwise surfaces a short status message
type Announcer interface {
	Announce(message string)
}

// Texts resolves localized messages
type Texts interface {
	GetText(key string) string
	Format(key string, args ...string) string
}

type nopPresenter struct{}

func (nopPresenter) SetSubmitEnabled(bool)            {}
func (nopPresenter) ShowProgress()                    {}
func (nopPresenter) HideProgress()                    {}
func (nopPresenter) ShowResult(*model.GeneratedImage) {}
func (nopPresenter) ShowError(string)                 {}
func (nopPresenter) ShowWarning(string)               {}
func (nopPresenter) ShowInfo(string)                  {}
func (nopPresenter) ClearInput()                      {}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(string) {}
