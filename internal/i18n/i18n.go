// Package i18n holds the UI and announcement texts in every supported language.
package i18n

import (
	"log"
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyMenuItem          = "menu_item"
	KeyMenuItemHint      = "menu_item_hint"
	KeyToolsMenu         = "tools_menu"
	KeyPromptPlaceholder = "prompt_placeholder"
	KeyClear             = "clear"
	KeyAbout             = "about"
	KeyGenerate          = "generate"
	KeyClose             = "close"
	KeyWarning           = "warning"
	KeyError             = "error"
	KeySuccess           = "success"
	KeyEnterValidPrompt  = "enter_valid_prompt"
	KeyNoValidPrompt     = "no_valid_prompt"
	KeyInputCleared      = "input_cleared"
	KeyGenerating        = "generating"
	KeyGenerated         = "generated"
	KeyGenerationFailed  = "generation_failed"
	KeyCannotClose       = "cannot_close"
	KeyWaitForGeneration = "wait_for_generation"
	KeyPleaseWait        = "please_wait"
	KeyAIGenerating      = "ai_generating"
	KeyGeneratedImage    = "generated_image"
	KeyResultHeading     = "result_heading"
	KeyDownloadImage     = "download_image"
	KeyCopyImage         = "copy_image"
	KeyImageCopied       = "image_copied"
	KeySaveImage         = "save_image"
	KeyFileType          = "file_type"
	KeyImageSavedAs      = "image_saved_as"
	KeyShowInFolder      = "show_in_folder"
	KeyErrorSaving       = "error_saving"
	KeyFailedToSave      = "failed_to_save"
	KeyNoImageToDownload = "no_image_to_download"
	KeyUnsupportedFormat = "unsupported_format"
	KeyAboutTitle        = "about_title"
	KeyAboutText         = "about_text"
	KeyNoThanks          = "no_thanks"
	KeyJoinTelegram      = "join_telegram"
	KeyVisitWebsite      = "visit_website"
	KeyLanguage          = "language"
	KeyNext              = "next"
	KeyCancel            = "cancel"
	KeyHotkeyUnavailable = "hotkey_unavailable"
	KeyOpenGenerator     = "open_generator"
	KeyLauncherHint      = "launcher_hint"
	KeyStatusReady       = "status_ready"
	KeySettings          = "settings"
	KeySaveDirectory     = "save_directory"
	KeyDefaultFormat     = "default_format"
	KeyShowFolderOnSave  = "show_folder_on_save"
	KeyBrowse            = "browse"
	KeySave              = "save"
	KeySettingsSaved     = "settings_saved"
	KeyCopyFailed        = "copy_failed"
	KeyGenerationError   = "generation_error"
	KeyWorkerUnavailable = "worker_unavailable"
	KeyUnknownError      = "unknown_error"
	KeyOpenImage         = "open_image"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the LANG/LC_ALL
// environment, falling back to English.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
		return
	}
	log.Printf("i18n: unsupported language %q, keeping %s", lang, l.currentLanguage)
}

func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			v = strings.ToLower(v)
			if i := strings.IndexAny(v, "_.-@"); i > 0 {
				v = v[:i]
			}
			return v
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with each "{}" replaced by the
// next argument
func (l *Localization) Format(key string, args ...string) string {
	text := l.GetText(key)
	for _, arg := range args {
		text = strings.Replace(text, "{}", arg, 1)
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}
