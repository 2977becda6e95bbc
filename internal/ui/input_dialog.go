package ui

import (
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/config"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/model"
	"github.com/ytget/ai-image-generator/internal/session"
)

// InputDialog is the window where the user describes the image to generate.
// It implements session.Presenter; every method runs on the Fyne thread.
type InputDialog struct {
	app          fyne.App
	window       fyne.Window
	ctrl         *session.Controller
	settings     *config.Settings
	localization *i18n.Localization

	promptEntry *widget.Entry
	clearBtn    *widget.Button
	aboutBtn    *widget.Button
	generateBtn *widget.Button
	closeBtn    *widget.Button
	statusLabel *widget.Label

	progress *ProgressDialog
	about    *AboutDialog
	result   *ResultDialog
	onClosed func()
	closed   bool
}

var _ session.Presenter = (*InputDialog)(nil)

// NewInputDialog creates the prompt window for one session. onClosed runs
// once the window has been allowed to close.
func NewInputDialog(app fyne.App, ctrl *session.Controller, settings *config.Settings, localization *i18n.Localization, onClosed func()) *InputDialog {
	d := &InputDialog{
		app:          app,
		ctrl:         ctrl,
		settings:     settings,
		localization: localization,
		onClosed:     onClosed,
	}
	d.window = app.NewWindow(localization.GetText(i18n.KeyAppTitle))
	d.setupUI()
	d.progress = NewProgressDialog(d.window, localization)
	ctrl.SetPresenter(d)
	return d
}

// Window returns the underlying window
func (d *InputDialog) Window() fyne.Window {
	return d.window
}

// Show displays the window and focuses the prompt
func (d *InputDialog) Show() {
	d.window.Show()
	d.window.RequestFocus()
	d.window.Canvas().Focus(d.promptEntry)
}

func (d *InputDialog) setupUI() {
	loc := d.localization

	heading := widget.NewLabelWithStyle(loc.GetText(i18n.KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	d.promptEntry = widget.NewMultiLineEntry()
	d.promptEntry.Wrapping = fyne.TextWrapWord
	d.promptEntry.SetPlaceHolder(loc.GetText(i18n.KeyPromptPlaceholder))
	d.promptEntry.SetMinRowsVisible(5)
	d.promptEntry.OnChanged = d.onPromptChanged

	d.clearBtn = widget.NewButton(loc.GetText(i18n.KeyClear), d.ctrl.Clear)
	d.clearBtn.Hide()

	d.aboutBtn = widget.NewButton(loc.GetText(i18n.KeyAbout), d.onAbout)
	d.generateBtn = widget.NewButton(loc.GetText(i18n.KeyGenerate), d.onGenerate)
	d.generateBtn.Importance = widget.HighImportance
	d.closeBtn = widget.NewButton(loc.GetText(i18n.KeyClose), d.requestClose)

	d.statusLabel = widget.NewLabel("")
	d.statusLabel.Wrapping = fyne.TextWrapWord

	buttons := container.NewHBox(d.clearBtn, d.aboutBtn, layout.NewSpacer(), d.generateBtn, d.closeBtn)
	content := container.NewBorder(
		heading,
		container.NewVBox(buttons, d.statusLabel),
		nil, nil,
		d.promptEntry,
	)

	d.window.SetContent(container.NewPadded(content))
	d.window.Resize(fyne.NewSize(InputWindowWidth, InputWindowHeight))
	d.window.SetCloseIntercept(d.requestClose)
	d.registerShortcuts()
}

// registerShortcuts binds the window's Alt keys. They are inert while a
// modal dialog is showing, which brings its own keys.
func (d *InputDialog) registerShortcuts() {
	bind := func(key fyne.KeyName, action func()) {
		d.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
			if d.modalShowing() {
				return
			}
			action()
		})
	}
	bind(fyne.KeyR, func() {
		if d.clearBtn.Visible() {
			d.ctrl.Clear()
		}
	})
	bind(fyne.KeyA, d.onAbout)
	bind(fyne.KeyG, func() {
		if !d.generateBtn.Disabled() {
			d.onGenerate()
		}
	})
	bind(fyne.KeyC, d.requestClose)
}

// onPromptChanged shows the clear button only while there is something to clear
func (d *InputDialog) onPromptChanged(text string) {
	if strings.TrimSpace(text) == "" {
		d.clearBtn.Hide()
	} else {
		d.clearBtn.Show()
	}
}

func (d *InputDialog) onGenerate() {
	err := d.ctrl.Submit(d.promptEntry.Text)
	if err == nil {
		return
	}
	// The controller reports empty prompts and worker failures itself
	log.Printf("Input: submit: %v", err)
	if errors.Is(err, session.ErrBusy) {
		d.ShowWarning(d.localization.GetText(i18n.KeyWaitForGeneration))
	}
}

func (d *InputDialog) modalShowing() bool {
	return (d.about != nil && d.about.Visible()) || d.progress.Visible()
}

func (d *InputDialog) onAbout() {
	if d.about != nil && d.about.Visible() {
		return
	}
	d.about = NewAboutDialog(d.app, d.window, d.localization)
	d.about.SetOnClosed(func() { d.about = nil })
	d.about.Show()
}

// requestClose closes the window only when the session allows it
func (d *InputDialog) requestClose() {
	if d.closed || !d.ctrl.RequestClose() {
		return
	}
	d.closed = true
	if d.about != nil {
		d.about.Hide()
	}
	if d.result != nil {
		d.result.Close()
		d.result = nil
	}
	d.progress.Hide()
	d.window.Close()
	if d.onClosed != nil {
		d.onClosed()
	}
}

// SetStatus shows message in the status line under the buttons
func (d *InputDialog) SetStatus(message string) {
	d.statusLabel.SetText(message)
}

// SetSubmitEnabled implements session.Presenter
func (d *InputDialog) SetSubmitEnabled(enabled bool) {
	if enabled {
		d.generateBtn.Enable()
		d.promptEntry.Enable()
	} else {
		d.generateBtn.Disable()
		d.promptEntry.Disable()
	}
}

// ShowProgress implements session.Presenter
func (d *InputDialog) ShowProgress() {
	d.progress.Show()
}

// HideProgress implements session.Presenter
func (d *InputDialog) HideProgress() {
	d.progress.Hide()
}

// ShowResult implements session.Presenter
func (d *InputDialog) ShowResult(img *model.GeneratedImage) {
	if d.result != nil {
		d.result.Close()
	}
	d.result = NewResultDialog(d.app, d.ctrl, d.settings, d.localization, img)
	d.result.Show()
}

// ShowError implements session.Presenter
func (d *InputDialog) ShowError(message string) {
	d.SetStatus(message)
	dialog.ShowError(errors.New(message), d.window)
}

// ShowWarning implements session.Presenter
func (d *InputDialog) ShowWarning(message string) {
	d.SetStatus(message)
	dialog.ShowInformation(d.localization.GetText(i18n.KeyWarning), message, d.window)
}

// ShowInfo implements session.Presenter
func (d *InputDialog) ShowInfo(message string) {
	d.SetStatus(message)
}

// ClearInput implements session.Presenter
func (d *InputDialog) ClearInput() {
	d.promptEntry.SetText("")
	d.clearBtn.Hide()
	d.window.Canvas().Focus(d.promptEntry)
}
