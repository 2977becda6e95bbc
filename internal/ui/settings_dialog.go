package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ai-image-generator/internal/config"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/model"
)

// SettingsDialog edits the persisted save and language preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *i18n.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	saveDirEntry     *widget.Entry
	formatSelect     *widget.Select
	languageSelect   *widget.Select
	showFolderCheck  *widget.Check
	languageCodes    map[string]string
	languageSelected string
}

// NewSettingsDialog creates a new settings dialog. onSaved may be nil.
func NewSettingsDialog(settings *config.Settings, localization *i18n.Localization, window fyne.Window, onSaved func(languageChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}
	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(loc.GetText(i18n.KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	formatOptions := make([]string, 0, len(model.SupportedImageKinds))
	for _, kind := range model.SupportedImageKinds {
		formatOptions = append(formatOptions, kind.Label())
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	// Display names map back to language codes
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.showFolderCheck = widget.NewCheck(loc.GetText(i18n.KeyShowFolderOnSave), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(i18n.KeySaveDirectory)),
		saveDirRow,
		widget.NewLabel(loc.GetText(i18n.KeyDefaultFormat)),
		sd.formatSelect,
		sd.showFolderCheck,
		widget.NewSeparator(),
		widget.NewLabel(loc.GetText(i18n.KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(i18n.KeySettings),
		loc.GetText(i18n.KeySave),
		loc.GetText(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.formatSelect.SetSelected(sd.settings.GetSaveFormat().Label())
	sd.showFolderCheck.SetChecked(sd.settings.GetShowFolderAfterSave())

	sd.languageSelected = sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == sd.languageSelected {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
}

// apply stores the form values and reports them through onSaved
func (sd *SettingsDialog) apply() {
	if dir := sd.saveDirEntry.Text; dir != "" {
		sd.settings.SetSaveDirectory(dir)
	}
	if kind, ok := model.ImageKindFromLabel(sd.formatSelect.Selected); ok {
		sd.settings.SetSaveFormat(kind)
	}
	sd.settings.SetShowFolderAfterSave(sd.showFolderCheck.Checked)

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.languageSelected {
		sd.settings.SetLanguage(code)
		sd.localization.SetLanguage(code)
		sd.languageSelected = code
		languageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}
}
