package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/ai-image-generator/internal/model"
	"github.com/ytget/ai-image-generator/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySaveDir    = "save_directory"
	KeySaveFormat = "save_format"
	KeyLanguage   = "app_language"
	KeyShowFolder = "show_folder_after_save"
)

// Default values
const (
	DefaultSaveFormat = model.DefaultImageKind
	DefaultLanguage   = "system"
	DefaultShowFolder = false
)

// Settings manages the user's persisted preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSaveDirectory returns the directory the save dialog opens in
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		// Use the user's Pictures directory
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			log.Printf("Settings: no pictures directory: %v", err)
			return ""
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetSaveFormat returns the last image format chosen for saving
func (s *Settings) GetSaveFormat() model.ImageKind {
	kind := model.ImageKind(s.app.Preferences().String(KeySaveFormat))
	if !kind.IsSupported() {
		s.SetSaveFormat(DefaultSaveFormat)
		return DefaultSaveFormat
	}
	return kind
}

// SetSaveFormat sets the save format. Unsupported kinds are ignored.
func (s *Settings) SetSaveFormat(kind model.ImageKind) {
	if !kind.IsSupported() {
		return
	}
	s.app.Preferences().SetString(KeySaveFormat, string(kind))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowFolderAfterSave returns whether to reveal saved images automatically
func (s *Settings) GetShowFolderAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowFolder, DefaultShowFolder)
}

// SetShowFolderAfterSave sets whether to reveal saved images automatically
func (s *Settings) SetShowFolderAfterSave(show bool) {
	s.app.Preferences().SetBool(KeyShowFolder, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
