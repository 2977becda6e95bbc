package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/config"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/imaging"
	"github.com/ytget/ai-image-generator/internal/model"
	"github.com/ytget/ai-image-generator/internal/platform"
	"github.com/ytget/ai-image-generator/internal/session"
)

// ResultDialog shows a generated image and offers to save or copy it
type ResultDialog struct {
	window       fyne.Window
	ctrl         *session.Controller
	settings     *config.Settings
	localization *i18n.Localization
	image        *model.GeneratedImage

	statusLabel *widget.Label
	closed      bool

	// savedDialog confirms a save and offers to open the file
	savedDialog   *dialog.CustomDialog
	openImageBtn  *widget.Button
	showFolderBtn *widget.Button

	// platform.OpenFileInManager and platform.OpenFileWithDefaultApp outside tests
	openFolder func(path string) error
	openImage  func(path string) error
}

// NewResultDialog creates the result window for img
func NewResultDialog(app fyne.App, ctrl *session.Controller, settings *config.Settings, localization *i18n.Localization, img *model.GeneratedImage) *ResultDialog {
	r := &ResultDialog{
		window:       app.NewWindow(localization.GetText(i18n.KeyGeneratedImage)),
		ctrl:         ctrl,
		settings:     settings,
		localization: localization,
		image:        img,
		openFolder:   platform.OpenFileInManager,
		openImage:    platform.OpenFileWithDefaultApp,
	}
	r.setupUI()
	r.window.SetOnClosed(func() { r.closed = true })
	return r
}

func (r *ResultDialog) setupUI() {
	loc := r.localization

	heading := widget.NewLabelWithStyle(loc.GetText(i18n.KeyResultHeading), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	var preview fyne.CanvasObject
	if r.image != nil && r.image.Decoded != nil {
		scaled := imaging.FitImage(r.image.Decoded, DisplayAreaWidth, DisplayAreaHeight)
		bounds := scaled.Bounds()
		img := canvas.NewImageFromImage(scaled)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
		preview = img
	} else {
		preview = widget.NewLabel(loc.GetText(i18n.KeyNoImageToDownload))
	}

	downloadBtn := widget.NewButton(loc.GetText(i18n.KeyDownloadImage), r.onDownload)
	downloadBtn.Importance = widget.HighImportance
	copyBtn := widget.NewButton(loc.GetText(i18n.KeyCopyImage), r.onCopy)
	closeBtn := widget.NewButton(loc.GetText(i18n.KeyClose), r.Close)

	r.statusLabel = widget.NewLabel("")

	content := container.NewBorder(
		heading,
		container.NewVBox(container.NewHBox(downloadBtn, copyBtn, layout.NewSpacer(), closeBtn), r.statusLabel),
		nil, nil,
		container.NewCenter(preview),
	)
	r.window.SetContent(container.NewPadded(content))

	r.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { r.onDownload() })
	r.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { r.Close() })
}

// Show displays the result window
func (r *ResultDialog) Show() {
	r.window.Show()
	r.window.RequestFocus()
}

// Close closes the window; calling it again is a no-op
func (r *ResultDialog) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.window.Close()
}

func (r *ResultDialog) onCopy() {
	if err := r.ctrl.CopyImage(); err != nil {
		dialog.ShowError(errors.New(r.localization.Format(i18n.KeyCopyFailed, err.Error())), r.window)
		return
	}
	r.statusLabel.SetText(r.localization.GetText(i18n.KeyImageCopied))
}

// onDownload asks for the file type first, then for the destination
func (r *ResultDialog) onDownload() {
	loc := r.localization

	labels := make([]string, 0, len(model.SupportedImageKinds))
	for _, kind := range model.SupportedImageKinds {
		labels = append(labels, kind.Label())
	}
	kindSelect := widget.NewSelect(labels, nil)
	kindSelect.SetSelected(r.settings.GetSaveFormat().Label())

	form := container.NewVBox(widget.NewLabel(loc.GetText(i18n.KeyFileType)), kindSelect)
	d := dialog.NewCustomConfirm(loc.GetText(i18n.KeySaveImage), loc.GetText(i18n.KeyNext), loc.GetText(i18n.KeyCancel), form, func(confirmed bool) {
		if !confirmed {
			return
		}
		kind, ok := model.ImageKindFromLabel(kindSelect.Selected)
		if !ok {
			dialog.ShowError(errors.New(loc.GetText(i18n.KeyUnsupportedFormat)), r.window)
			return
		}
		r.chooseDestination(kind)
	}, r.window)
	d.Show()
}

func (r *ResultDialog) chooseDestination(kind model.ImageKind) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, r.window)
			return
		}
		if writer == nil {
			return
		}
		chosen := writer.URI().Path()
		if cerr := writer.Close(); cerr != nil {
			log.Printf("Result: closing %s: %v", chosen, cerr)
		}
		r.save(chosen, kind)
	}, r.window)

	fd.SetFilter(storage.NewExtensionFileFilter(kind.Extensions()))
	fd.SetFileName(imaging.SuggestFileName(r.ctrl.LastPrompt(), kind, time.Now()))
	if dir := r.settings.GetSaveDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Resize(fyne.NewSize(DisplayAreaWidth, DisplayAreaHeight))
	fd.Show()
}

// save writes the image to chosen and reports the outcome
func (r *ResultDialog) save(chosen string, kind model.ImageKind) {
	loc := r.localization

	written, err := r.ctrl.SaveImage(chosen, kind)
	discardPlaceholder(chosen, written)
	if err != nil {
		dialog.ShowError(errors.New(loc.Format(i18n.KeyErrorSaving, err.Error())), r.window)
		return
	}

	r.settings.SetSaveDirectory(filepath.Dir(written))
	if savedKind, ok := model.ImageKindFromPath(written); ok {
		kind = savedKind
	}
	r.settings.SetSaveFormat(kind)

	message := loc.Format(i18n.KeyImageSavedAs, written)
	r.statusLabel.SetText(message)

	if r.settings.GetShowFolderAfterSave() {
		r.showInFolder(written)
		return
	}
	r.showSaved(written, message)
}

// showSaved confirms a save with buttons to open the image or its folder
func (r *ResultDialog) showSaved(path, message string) {
	loc := r.localization

	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord

	var d *dialog.CustomDialog
	r.openImageBtn = widget.NewButton(loc.GetText(i18n.KeyOpenImage), func() {
		d.Hide()
		r.open(r.openImage, path)
	})
	r.openImageBtn.Importance = widget.HighImportance
	r.showFolderBtn = widget.NewButton(loc.GetText(i18n.KeyShowInFolder), func() {
		d.Hide()
		r.showInFolder(path)
	})
	closeBtn := widget.NewButton(loc.GetText(i18n.KeyClose), func() { d.Hide() })

	content := container.NewVBox(text, container.NewHBox(r.openImageBtn, r.showFolderBtn, layout.NewSpacer(), closeBtn))
	d = dialog.NewCustomWithoutButtons(loc.GetText(i18n.KeySuccess), content, r.window)
	r.savedDialog = d
	d.Show()
}

func (r *ResultDialog) showInFolder(path string) {
	r.open(r.openFolder, path)
}

func (r *ResultDialog) open(opener func(path string) error, path string) {
	if err := opener(path); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", path, err), r.window)
	}
}

// discardPlaceholder removes the empty file the save dialog creates at
// chosen when the image ended up somewhere else or was not written at all
func discardPlaceholder(chosen, written string) {
	if chosen == "" || (written != "" && imaging.SameFile(chosen, written)) {
		return
	}
	info, err := os.Stat(chosen)
	if err != nil || info.IsDir() || info.Size() != 0 {
		return
	}
	if err := os.Remove(chosen); err != nil {
		log.Printf("Result: failed to remove placeholder %s: %v", chosen, err)
	}
}
