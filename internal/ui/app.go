package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/config"
	"github.com/ytget/ai-image-generator/internal/generate"
	"github.com/ytget/ai-image-generator/internal/handoff"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/poll"
	"github.com/ytget/ai-image-generator/internal/session"
)

// Options wires the launcher
type Options struct {
	Config       *config.Config
	Generator    generate.Generator
	Settings     *config.Settings
	Localization *i18n.Localization

	// CopyImage places an image on the clipboard. Nil disables copying.
	CopyImage func(img image.Image) error

	// Dispatch runs result handling on the UI thread. Defaults to fyne.Do.
	Dispatch poll.Dispatcher
}

// Launcher is the main window. It shows the shortcut hint and the status
// line, and opens one generator session at a time.
type Launcher struct {
	app          fyne.App
	window       fyne.Window
	cfg          *config.Config
	generator    generate.Generator
	settings     *config.Settings
	localization *i18n.Localization
	copyImage    func(img image.Image) error
	dispatch     poll.Dispatcher
	announcer    session.Announcer

	hintLabel   *widget.Label
	statusLabel *widget.Label
	openBtn     *widget.Button
	settingsBtn *widget.Button

	current  *InputDialog
	onQuit   func()
	quitting bool
}

// NewLauncher creates the main window. It is not shown until Show is called.
func NewLauncher(app fyne.App, opts Options) *Launcher {
	l := &Launcher{
		app:          app,
		cfg:          opts.Config,
		generator:    opts.Generator,
		settings:     opts.Settings,
		localization: opts.Localization,
		copyImage:    opts.CopyImage,
		dispatch:     opts.Dispatch,
	}
	if l.cfg == nil {
		cfg := config.DefaultConfig()
		l.cfg = &cfg
	}
	if l.dispatch == nil {
		l.dispatch = fyne.Do
	}

	app.Settings().SetTheme(NewGeneratorTheme())
	l.window = app.NewWindow(l.localization.GetText(i18n.KeyAppTitle))
	l.window.SetMaster()
	l.setupUI()
	return l
}

func (l *Launcher) setupUI() {
	l.hintLabel = widget.NewLabel("")
	l.hintLabel.Wrapping = fyne.TextWrapWord
	l.statusLabel = widget.NewLabel("")
	l.statusLabel.Wrapping = fyne.TextWrapWord

	l.openBtn = widget.NewButton("", l.OpenGenerator)
	l.openBtn.Importance = widget.HighImportance
	l.settingsBtn = widget.NewButton("", l.onShowSettings)

	l.refreshTexts()

	content := container.NewVBox(
		l.hintLabel,
		container.NewHBox(l.openBtn, layout.NewSpacer(), l.settingsBtn),
		widget.NewSeparator(),
		l.statusLabel,
	)
	l.window.SetContent(container.NewPadded(content))
	l.window.Resize(fyne.NewSize(LauncherWidth, LauncherHeight))
	l.window.SetCloseIntercept(l.requestQuit)
}

// refreshTexts reapplies localized strings after a language change
func (l *Launcher) refreshTexts() {
	loc := l.localization
	l.window.SetTitle(loc.GetText(i18n.KeyAppTitle))
	l.hintLabel.SetText(loc.Format(i18n.KeyLauncherHint, l.cfg.UI.Hotkey))
	l.statusLabel.SetText(loc.GetText(i18n.KeyStatusReady))
	l.openBtn.SetText(loc.GetText(i18n.KeyOpenGenerator))
	l.settingsBtn.SetText(loc.GetText(i18n.KeySettings))
}

// Window returns the main window, which hosts the Tools menu
func (l *Launcher) Window() fyne.Window {
	return l.window
}

// Show displays the main window
func (l *Launcher) Show() {
	l.window.Show()
}

// SetAnnouncer routes session announcements through the host. Until it is
// set they only reach the status line.
func (l *Launcher) SetAnnouncer(announcer session.Announcer) {
	l.announcer = announcer
}

// Announce implements session.Announcer
func (l *Launcher) Announce(message string) {
	if l.announcer != nil {
		l.announcer.Announce(message)
		return
	}
	l.SetStatus(message)
}

// SetStatus shows message in the status lines of the launcher and of the
// open generator window
func (l *Launcher) SetStatus(message string) {
	l.statusLabel.SetText(message)
	if l.current != nil {
		l.current.SetStatus(message)
	}
}

// SetOnQuit registers fn to run once the main window is allowed to close,
// while the UI is still running
func (l *Launcher) SetOnQuit(fn func()) {
	l.onQuit = fn
}

// Current returns the open generator window, if any
func (l *Launcher) Current() *InputDialog {
	return l.current
}

// OpenGenerator opens the prompt window with a fresh session, or focuses the
// one already open
func (l *Launcher) OpenGenerator() {
	if l.current != nil {
		l.current.Show()
		return
	}

	slot := handoff.NewSlot()
	svc := generate.NewService(l.generator, slot, l.cfg.Timeout())
	ctrl := session.NewController(session.Options{
		Submitter:    svc,
		Slot:         slot,
		PollInterval: l.cfg.PollInterval(),
		Dispatch:     l.dispatch,
		Texts:        l.localization,
		Announcer:    l,
		CopyImage:    l.copyImage,
	})

	var dlg *InputDialog
	dlg = NewInputDialog(l.app, ctrl, l.settings, l.localization, func() {
		if l.current == dlg {
			l.current = nil
		}
	})
	l.current = dlg
	log.Printf("Launcher: generator opened")
	dlg.Show()
}

func (l *Launcher) onShowSettings() {
	NewSettingsDialog(l.settings, l.localization, l.window, func(languageChanged bool) {
		if languageChanged {
			l.refreshTexts()
		}
		l.SetStatus(l.localization.GetText(i18n.KeySettingsSaved))
	}).Show()
}

// requestQuit closes the generator window first; a running job keeps both
// open. Once the main window has closed further requests do nothing.
func (l *Launcher) requestQuit() {
	if l.quitting {
		return
	}
	if l.current != nil {
		l.current.requestClose()
		if l.current != nil {
			return
		}
	}
	l.quitting = true
	if l.onQuit != nil {
		l.onQuit()
		l.onQuit = nil
	}
	l.window.Close()
}
