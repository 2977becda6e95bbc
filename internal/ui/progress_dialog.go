package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/i18n"
)

// ProgressDialog is the modal shown while a job is outstanding. It has no
// buttons so the user cannot dismiss it.
type ProgressDialog struct {
	dialog  *dialog.CustomDialog
	bar     *widget.ProgressBarInfinite
	visible bool
}

// NewProgressDialog creates a hidden progress dialog on window
func NewProgressDialog(window fyne.Window, localization *i18n.Localization) *ProgressDialog {
	bar := widget.NewProgressBarInfinite()
	bar.Stop()
	content := container.NewVBox(
		widget.NewLabel(localization.GetText(i18n.KeyAIGenerating)),
		bar,
	)
	return &ProgressDialog{
		dialog: dialog.NewCustomWithoutButtons(localization.GetText(i18n.KeyPleaseWait), content, window),
		bar:    bar,
	}
}

// Show displays the dialog and starts the animation
func (p *ProgressDialog) Show() {
	if p.visible {
		return
	}
	p.visible = true
	p.bar.Start()
	p.dialog.Show()
}

// Hide dismisses the dialog
func (p *ProgressDialog) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.bar.Stop()
	p.dialog.Hide()
}

// Visible reports whether the dialog is showing
func (p *ProgressDialog) Visible() bool {
	return p.visible
}
