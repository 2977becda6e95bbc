package ui

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/i18n"
)

type shortcutBinding struct {
	shortcut fyne.Shortcut
	action   func()
}

// AboutDialog describes the add-on and links to the author's channels
type AboutDialog struct {
	app      fyne.App
	window   fyne.Window
	dialog   *dialog.CustomDialog
	bindings []shortcutBinding
	visible  bool
	onClosed func()
}

// NewAboutDialog creates the about dialog on window
func NewAboutDialog(app fyne.App, window fyne.Window, localization *i18n.Localization) *AboutDialog {
	a := &AboutDialog{app: app, window: window}

	text := widget.NewLabel(localization.GetText(i18n.KeyAboutText))
	text.Wrapping = fyne.TextWrapWord

	noThanks := widget.NewButton(localization.GetText(i18n.KeyNoThanks), a.Hide)
	telegram := widget.NewButton(localization.GetText(i18n.KeyJoinTelegram), func() { a.visit(TelegramURL) })
	website := widget.NewButton(localization.GetText(i18n.KeyVisitWebsite), func() { a.visit(WebsiteURL) })
	telegram.Importance = widget.HighImportance
	website.Importance = widget.HighImportance

	content := container.NewVBox(text, container.NewHBox(noThanks, telegram, website))
	a.dialog = dialog.NewCustomWithoutButtons(localization.GetText(i18n.KeyAboutTitle), content, window)
	a.dialog.Resize(fyne.NewSize(AboutWidth, content.MinSize().Height+80))
	a.dialog.SetOnClosed(a.closed)

	a.bind(fyne.KeyN, a.Hide)
	a.bind(fyne.KeyJ, func() { a.visit(TelegramURL) })
	a.bind(fyne.KeyW, func() { a.visit(WebsiteURL) })
	return a
}

func (a *AboutDialog) bind(key fyne.KeyName, action func()) {
	a.bindings = append(a.bindings, shortcutBinding{
		shortcut: &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierAlt},
		action:   action,
	})
}

// SetOnClosed registers fn to run when the dialog is dismissed
func (a *AboutDialog) SetOnClosed(fn func()) {
	a.onClosed = fn
}

// Visible reports whether the dialog is showing
func (a *AboutDialog) Visible() bool {
	return a.visible
}

// Show displays the dialog and enables its Alt shortcuts
func (a *AboutDialog) Show() {
	a.visible = true
	for _, b := range a.bindings {
		action := b.action
		a.window.Canvas().AddShortcut(b.shortcut, func(fyne.Shortcut) { action() })
	}
	a.dialog.Show()
}

// Hide dismisses the dialog
func (a *AboutDialog) Hide() {
	a.dialog.Hide()
}

func (a *AboutDialog) closed() {
	if !a.visible {
		return
	}
	a.visible = false
	for _, b := range a.bindings {
		a.window.Canvas().RemoveShortcut(b.shortcut)
	}
	if a.onClosed != nil {
		a.onClosed()
	}
}

// visit opens link in the default browser and closes the dialog
func (a *AboutDialog) visit(link string) {
	u, err := url.Parse(link)
	if err != nil {
		log.Printf("About: bad link %q: %v", link, err)
		return
	}
	if err := a.app.OpenURL(u); err != nil {
		log.Printf("About: failed to open %s: %v", link, err)
	}
	a.Hide()
}
